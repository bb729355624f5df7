package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/domain"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

func NewCalcCommand() *cobra.Command {
	var (
		arrival   string
		breakTime string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate departure time and break allowance once",
		Example: `  attendance calc --arrival 08:30 --break 01:00
  attendance calc --arrival 09:00 --break 00:45 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			calc := attendance.NewCalculator(config.DefaultPolicy())

			result, err := calc.CalculateInput(attendance.Input{
				ArrivalTime:    arrival,
				BreakTimeSpent: breakTime,
			})
			if err != nil {
				if vErr, ok := domain.AsValidationError(err); ok {
					return fmt.Errorf("%s: %s", vErr.Field, vErr.Message)
				}
				return err
			}

			if output == outputText {
				return printResult(cmd.OutOrStdout(), result)
			}
			return writeStructured(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVar(&arrival, "arrival", "", "Arrival time HH:MM (24-hour clock)")
	cmd.Flags().StringVar(&breakTime, "break", "00:00", "Break time already taken HH:MM")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("arrival")

	return cmd
}

func printResult(w io.Writer, r *attendance.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Arrival time:\t%s\n", r.ArrivalTime)
	fmt.Fprintf(tw, "Required departure time:\t%s\n", r.DepartureTime)
	fmt.Fprintf(tw, "Break time spent:\t%s\n", r.BreakTimeSpent)
	fmt.Fprintf(tw, "Break time left:\t%s\n", r.BreakTimeLeft)
	fmt.Fprintf(tw, "Effective work time:\t%s\n", r.EffectiveWorkTime)
	if r.BreakExceeded() {
		fmt.Fprintf(tw, "Break over allowance:\t%s\n", domain.Span(-r.BreakTimeLeftMinutes))
	}
	fmt.Fprintf(tw, "Work requirement:\t%s\n", requirementLabel(r.MeetsWorkRequirement()))
	fmt.Fprintf(tw, "Status (%s):\t%s\n", r.Severity, r.StatusMessage)
	return tw.Flush()
}

func requirementLabel(met bool) string {
	if met {
		return "met"
	}
	return "not met"
}
