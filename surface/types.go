package surface

import "fmt"

// Kind discriminates the two section variants.
type Kind int

const (
	// Full binds a section to a file's entire content. On save the file is
	// overwritten with the section's edited lines.
	Full Kind = iota

	// Partial binds a section to a line-range window of a file. On save only
	// the window is spliced; lines outside it are preserved verbatim.
	Partial
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FileSpec describes one fragment to lay out: a whole file, or a window of
// one. FileStart and FileEnd are meaningful only when Kind is Partial.
type FileSpec struct {
	Filename  string
	Kind      Kind
	FileStart int
	FileEnd   int
}

// Section is one fragment of the surface.
//
// FileStart and FileEnd are the on-disk window (Partial only). BufferStart
// and BufferEnd are the section's current span within the surface; they are
// derived by ResolveBounds and are never ground truth on their own.
type Section struct {
	Filename  string
	Kind      Kind
	FileStart int
	FileEnd   int

	BufferStart int
	BufferEnd   int

	anchor Anchor
}

// Span returns the number of surface lines the section currently covers.
// Zero means the section's content was entirely deleted.
func (s *Section) Span() int {
	return s.BufferEnd - s.BufferStart + 1
}

// Decoration returns the payload attached to the section's anchor, for hosts
// that render a heading above each section.
func (s *Section) Decoration() string {
	if s.anchor == nil {
		return ""
	}
	return s.anchor.Decoration()
}

// Spec returns the FileSpec that would reproduce this section's layout from
// its current file-side state.
func (s *Section) Spec() FileSpec {
	return FileSpec{
		Filename:  s.Filename,
		Kind:      s.Kind,
		FileStart: s.FileStart,
		FileEnd:   s.FileEnd,
	}
}

// Window widens the inclusive line range [min, max] by context lines on each
// side, clamped into [1, total].
func Window(min, max, context, total int) (start, end int) {
	start = clampInt(min-context, 1, total)
	end = clampInt(max+context, start, total)
	return start, end
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
