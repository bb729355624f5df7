package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

func NewPolicyCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the attendance policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			summary := attendance.SummarizePolicy(config.DefaultPolicy())
			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, summary)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Arrival window:     %s - %s\n", summary.MinArrival, summary.MaxArrival)
			fmt.Fprintf(w, "Office time:        %s\n", summary.RequiredTotalOffice)
			fmt.Fprintf(w, "Required work time: %s\n", summary.RequiredWork)
			fmt.Fprintf(w, "Designated break:   %s\n", summary.DesignatedBreak)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}
