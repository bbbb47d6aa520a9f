package surface

import (
	"os"
	"strings"
)

// FS is the filesystem collaborator. Content is exchanged as ordered line
// slices without trailing newlines. No atomicity guarantee is provided.
type FS interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

// OSFS implements FS against the real filesystem.
//
// An empty file reads as zero lines. A trailing newline is normalized: files
// written through OSFS always end with one (or are empty for zero lines).
type OSFS struct{}

func (OSFS) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

func (OSFS) WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(JoinLines(lines)), 0o644)
}

// SplitLines splits file content into lines, treating a trailing newline as
// a terminator rather than the start of an empty final line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
