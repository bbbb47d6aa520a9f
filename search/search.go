// Package search is the pattern-search collaborator: it scans files for a
// regular expression and summarizes the matches per file. The surface layer
// only consumes the summary; it never sees individual match positions beyond
// line numbers.
package search

import (
	"bufio"
	"os"
	"regexp"
)

// Matches summarizes one file's hits. Lines holds the 1-based matched line
// numbers in ascending order; Min and Max are its first and last entries.
type Matches struct {
	Lines []int
	Min   int
	Max   int
}

// Find compiles pattern and scans each path for matching lines. Files with
// no matches are absent from the result. Unreadable files are skipped and
// reported in skipped; they never fail the search.
func Find(pattern string, paths []string) (found map[string]Matches, skipped map[string]error, err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, err
	}

	found = make(map[string]Matches)
	skipped = make(map[string]error)
	for _, path := range paths {
		m, rerr := scanFile(re, path)
		if rerr != nil {
			skipped[path] = rerr
			continue
		}
		if len(m.Lines) > 0 {
			found[path] = m
		}
	}
	return found, skipped, nil
}

func scanFile(re *regexp.Regexp, path string) (Matches, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matches{}, err
	}
	defer f.Close()

	var m Matches
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if re.Match(sc.Bytes()) {
			m.Lines = append(m.Lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Matches{}, err
	}
	if len(m.Lines) > 0 {
		m.Min = m.Lines[0]
		m.Max = m.Lines[len(m.Lines)-1]
	}
	return m, nil
}
