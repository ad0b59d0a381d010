package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelink-org/rpm/clinicians"
	"github.com/carelink-org/rpm/store"
	"github.com/spf13/cobra"
)

var cliniciansCmd = &cobra.Command{
	Use:   "clinicians [clinicId]",
	Short: "List the members of a clinic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service clinicians.Service) error {
			return printClinicians(service, args[0])
		})
	},
}

func printClinicians(service clinicians.Service, clinicId string) error {
	filter := &clinicians.Filter{ClinicId: &clinicId}
	result, err := service.List(context.TODO(), filter, store.DefaultPagination().WithLimit(listLimit))
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
	rootCmd.AddCommand(cliniciansCmd)
}
