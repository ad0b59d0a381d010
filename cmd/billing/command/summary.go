package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelink-org/rpm/billing"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [patientId]",
	Short: "Print the billing summary for a patient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(summaries billing.Summaries) error {
			return printPatientSummary(summaries, args[0])
		})
	},
}

func printPatientSummary(summaries billing.Summaries, patientId string) error {
	from, to, err := parseWindow()
	if err != nil {
		return err
	}

	summary, err := summaries.GetPatientSummary(context.TODO(), callerId, patientId, from, to)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
