package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carelink-org/rpm/billing"
	"github.com/spf13/cobra"
)

var (
	callerId   string
	windowFrom string
	windowTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report [clinicId]",
	Short: "Print the billing report for a clinic",
	Long:  "The report command computes the billing eligibility report for every actively enrolled patient of a clinic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(reports billing.Reports) error {
			return printClinicReport(reports, args[0])
		})
	},
}

func printClinicReport(reports billing.Reports, clinicId string) error {
	from, to, err := parseWindow()
	if err != nil {
		return err
	}

	report, err := reports.GetClinicReport(context.TODO(), callerId, clinicId, from, to)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

func parseWindow() (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if windowFrom != "" {
		parsed, err := time.Parse(time.RFC3339, windowFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from: %w", err)
		}
		from = &parsed
	}
	if windowTo != "" {
		parsed, err := time.Parse(time.RFC3339, windowTo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to: %w", err)
		}
		to = &parsed
	}
	return from, to, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&callerId, "clinician", "", "User id of the clinician making the request")
	rootCmd.PersistentFlags().StringVar(&windowFrom, "from", "", "Start of the billing window (RFC3339), defaults to the start of the current month")
	rootCmd.PersistentFlags().StringVar(&windowTo, "to", "", "End of the billing window (RFC3339), defaults to now")
	rootCmd.AddCommand(reportCmd)
}
