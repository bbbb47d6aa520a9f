package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/strata/host"
	"github.com/iw2rmb/strata/surface"
	"github.com/iw2rmb/strata/tui"
)

var (
	flagName    string
	flagContext int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Edit fragments of many files as one surface",
	Long: `strata assembles fragments of several files into a single editable
surface and splices your edits back into the right files on save. Whole
files are overwritten; windowed fragments only replace their window,
leaving the rest of the file byte-for-byte intact.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it. Called by
// main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagName, "name", "n", "strata", "surface name")
	rootCmd.PersistentFlags().IntVarP(&flagContext, "context", "C", 3, "context lines around matches")
}

// runSurface opens one surface over specs and hands it to the TUI.
func runSurface(specs []surface.FileSpec) error {
	h := host.New()
	mgr := surface.NewManager(h, surface.OSFS{}, surface.Options{})

	s, err := mgr.Open(flagName, specs)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Manager: mgr,
		Host:    h,
		Active:  s.Name(),
		KeyMap:  tui.DefaultKeyMap(),
		Style:   tui.DefaultStyle(),
	})
}

// defaultFiles lists the regular files of the current directory, for
// subcommands invoked without an explicit file set.
func defaultFiles() ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files in current directory")
	}
	return files, nil
}
