// Package cli implements the samplectl command line tool, the offline
// counterpart of the HTTP service: CSV ledger in, Excel workbook out.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "samplectl",
		Short:        "samplectl — stratified audit sampling over ledger exports",
		SilenceUsage: true,
	}

	cmd.AddCommand(runCmd())
	return cmd
}
