package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelink-org/rpm/clinics"
	"github.com/carelink-org/rpm/store"
	"github.com/spf13/cobra"
)

var (
	clinicIds []string
	listLimit int
)

var clinicsCmd = &cobra.Command{
	Use:   "clinics",
	Short: "List clinics known to the billing engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service clinics.Service) error {
			return printClinics(service)
		})
	},
}

func printClinics(service clinics.Service) error {
	result, err := service.List(context.TODO(), &clinics.Filter{Ids: clinicIds}, store.DefaultPagination().WithLimit(listLimit))
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

func init() {
	clinicsCmd.Flags().StringSliceVar(&clinicIds, "ids", nil, "Limit the listing to the given clinic ids")
	rootCmd.PersistentFlags().IntVar(&listLimit, "limit", 100, "Maximum number of records to list")
	rootCmd.AddCommand(clinicsCmd)
}
