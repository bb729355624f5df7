// Package cli implements the cobra commands of the attendance binary.
//
// Running the binary without a subcommand starts the HTTP service, so the
// container entrypoint needs no arguments.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo identifies the running binary. main fills it from ldflags.
type BuildInfo struct {
	Version  string
	Revision string
}

func NewRootCommand(build BuildInfo) *cobra.Command {
	serveCmd := NewServeCommand(build)

	rootCmd := &cobra.Command{
		Use:   "attendance",
		Short: "Office attendance compliance calculator (web service or CLI)",
		Long: `attendance computes the required departure time, remaining break
allowance and effective work time from an arrival time and the break
already taken, and reports whether the work time requirement can be met.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
	}
	rootCmd.SetVersionTemplate("attendance {{.Version}}\n")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(NewCalcCommand())
	rootCmd.AddCommand(NewPolicyCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(build BuildInfo) int {
	return execute(NewRootCommand(build), os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
