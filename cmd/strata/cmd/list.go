package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/strata/listsrc"
	"github.com/iw2rmb/strata/surface"
)

// listCmd opens windowed fragments from a file:line list produced by another
// tool (grep -n, a compiler, a quickfix dump).
var listCmd = &cobra.Command{
	Use:   "list [LISTFILE]",
	Short: "Open windows from a file:line list (stdin by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		entries, err := listsrc.Parse(in)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("empty list")
		}

		fs := surface.OSFS{}
		var specs []surface.FileSpec
		for _, fr := range listsrc.Group(entries) {
			lines, rerr := fs.ReadLines(fr.Filename)
			if rerr != nil {
				fmt.Fprintf(os.Stderr, "strata: skipping %s: %v\n", fr.Filename, rerr)
				continue
			}
			start, end := surface.Window(fr.Min, fr.Max, flagContext, len(lines))
			specs = append(specs, surface.FileSpec{
				Filename:  fr.Filename,
				Kind:      surface.Partial,
				FileStart: start,
				FileEnd:   end,
			})
		}
		return runSurface(specs)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
