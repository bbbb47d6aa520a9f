// Package listsrc is the list-source collaborator: it consumes an ordered
// list of (filename, line) pairs produced by another tool — grep -n output,
// quickfix-style lists — and groups it into per-file line ranges.
package listsrc

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one (filename, line) pair. Line is 1-based.
type Entry struct {
	Filename string
	Line     int
}

// FileRange is the grouped summary for one file: the minimum and maximum
// line number seen across its entries.
type FileRange struct {
	Filename string
	Min      int
	Max      int
}

// entryRE matches "file:line" with an optional trailing ":rest" (column,
// matched text), the common shape of grep -n and compiler output.
var entryRE = regexp.MustCompile(`^(.+?):(\d+)(?::.*)?$`)

// Parse reads entries line by line. Blank lines are skipped; a line that
// does not parse fails the whole read, pointing at its line number.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := entryRE.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("line %d: %q is not file:line", n, text)
		}
		line, err := strconv.Atoi(m[2])
		if err != nil || line < 1 {
			return nil, fmt.Errorf("line %d: bad line number %q", n, m[2])
		}
		entries = append(entries, Entry{Filename: m[1], Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Group collapses entries into one FileRange per file, computing each file's
// min and max line. File order follows first appearance in the input.
func Group(entries []Entry) []FileRange {
	index := make(map[string]int)
	var ranges []FileRange
	for _, e := range entries {
		i, ok := index[e.Filename]
		if !ok {
			index[e.Filename] = len(ranges)
			ranges = append(ranges, FileRange{Filename: e.Filename, Min: e.Line, Max: e.Line})
			continue
		}
		if e.Line < ranges[i].Min {
			ranges[i].Min = e.Line
		}
		if e.Line > ranges[i].Max {
			ranges[i].Max = e.Line
		}
	}
	return ranges
}
