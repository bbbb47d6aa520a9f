package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/strata/search"
	"github.com/iw2rmb/strata/surface"
)

// grepCmd opens windowed fragments around pattern matches.
var grepCmd = &cobra.Command{
	Use:   "grep PATTERN [FILE...]",
	Short: "Open windows around regexp matches as one surface",
	Long: `Searches the given files (or every regular file in the current
directory) for a regular expression and opens one windowed fragment per
matching file, spanning the first through last match widened by --context
lines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		files := args[1:]
		if len(files) == 0 {
			var err error
			files, err = defaultFiles()
			if err != nil {
				return err
			}
		}

		found, skipped, err := search.Find(pattern, files)
		if err != nil {
			return err
		}
		for path, serr := range skipped {
			fmt.Fprintf(os.Stderr, "strata: skipping %s: %v\n", path, serr)
		}
		if len(found) == 0 {
			return fmt.Errorf("no matches for %q", pattern)
		}

		fs := surface.OSFS{}
		var specs []surface.FileSpec
		for _, path := range files {
			m, ok := found[path]
			if !ok {
				continue
			}
			lines, rerr := fs.ReadLines(path)
			if rerr != nil {
				continue
			}
			start, end := surface.Window(m.Min, m.Max, flagContext, len(lines))
			specs = append(specs, surface.FileSpec{
				Filename:  path,
				Kind:      surface.Partial,
				FileStart: start,
				FileEnd:   end,
			})
		}
		return runSurface(specs)
	},
}

func init() {
	rootCmd.AddCommand(grepCmd)
}
