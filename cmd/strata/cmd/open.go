package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/strata/surface"
)

// openCmd opens whole files as one surface.
var openCmd = &cobra.Command{
	Use:   "open FILE...",
	Short: "Open whole files as one editable surface",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurface(surface.FullSpecs(args))
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
