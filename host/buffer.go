package host

import "github.com/iw2rmb/strata/surface"

// Buffer is one editable line buffer: content, cursor, dirty flag, anchors.
// It implements surface.Buffer and adds the line-granular editing operations
// the TUI drives.
type Buffer struct {
	name    string
	lines   []string
	anchors []*Anchor
	nextSeq int
	dirty   bool
	cursor  int
	version uint64
}

func (b *Buffer) Name() string { return b.name }

func (b *Buffer) Lines() []string { return b.lines }

// SetLines replaces the buffer's full content. Anchor rows are clamped into
// the new bounds; the dirty flag is untouched (a full replace is a layout
// operation, not a user edit).
func (b *Buffer) SetLines(lines []string) {
	b.lines = append([]string(nil), lines...)
	for _, a := range b.anchors {
		a.row = b.clampRow(a.row)
	}
	b.cursor = b.clampRow(b.cursor)
	b.version++
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Version increments on every content, cursor, or anchor mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) SetDirty(dirty bool) { b.dirty = dirty }

func (b *Buffer) CursorRow() int { return b.cursor }

func (b *Buffer) SetCursorRow(row int) {
	next := b.clampRow(row)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Line returns the content of the 1-based row, or "" out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 1 || row > len(b.lines) {
		return ""
	}
	return b.lines[row-1]
}

// SetLine replaces one line's content. Anchors do not move; the edit marks
// the buffer dirty.
func (b *Buffer) SetLine(row int, text string) {
	if row < 1 || row > len(b.lines) {
		return
	}
	if b.lines[row-1] == text {
		return
	}
	b.lines[row-1] = text
	b.dirty = true
	b.version++
}

// InsertLines inserts the given lines so that the first of them becomes the
// 1-based row. Anchors at or below row slide down: an insertion exactly at
// an anchor's row pushes the anchor down, never leaves it above the new
// content.
func (b *Buffer) InsertLines(row int, lines ...string) {
	if len(lines) == 0 {
		return
	}
	row = clampInt(row, 1, len(b.lines)+1)

	next := make([]string, 0, len(b.lines)+len(lines))
	next = append(next, b.lines[:row-1]...)
	next = append(next, lines...)
	next = append(next, b.lines[row-1:]...)
	b.lines = next

	for _, a := range b.anchors {
		if a.row >= row {
			a.row += len(lines)
		}
	}
	if b.cursor >= row {
		b.cursor += len(lines)
	}
	b.dirty = true
	b.version++
}

// RemoveLines deletes n lines starting at the 1-based row. Anchors below the
// deleted range slide up; anchors inside it collapse onto the row preceding
// the deletion, so the anchors of a fully deleted span coincide with their
// predecessor's instead of capturing the next surviving line.
func (b *Buffer) RemoveLines(row, n int) {
	if n <= 0 || row > len(b.lines) {
		return
	}
	row = clampInt(row, 1, len(b.lines))
	if row+n > len(b.lines)+1 {
		n = len(b.lines) + 1 - row
	}

	b.lines = append(b.lines[:row-1], b.lines[row+n-1:]...)

	for _, a := range b.anchors {
		switch {
		case a.row >= row+n:
			a.row -= n
		case a.row >= row:
			a.row = maxInt(row-1, 1)
		}
	}
	b.cursor = b.clampRow(b.cursor)
	b.dirty = true
	b.version++
}

func (b *Buffer) CreateAnchor(row int, decoration string) surface.Anchor {
	a := &Anchor{
		row:        b.clampRow(row),
		seq:        b.nextSeq,
		decoration: decoration,
	}
	b.nextSeq++
	b.anchors = append(b.anchors, a)
	b.version++
	return a
}

func (b *Buffer) Anchors() []surface.Anchor {
	out := make([]surface.Anchor, len(b.anchors))
	for i, a := range b.anchors {
		out[i] = a
	}
	return out
}

func (b *Buffer) ClearAnchors() {
	b.anchors = nil
	b.version++
}

func (b *Buffer) clampRow(row int) int {
	return clampInt(row, 1, maxInt(len(b.lines), 1))
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Anchor is a position marker with push-down gravity. It implements
// surface.Anchor.
type Anchor struct {
	row        int
	seq        int
	decoration string
}

func (a *Anchor) Row() int { return a.row }

func (a *Anchor) Seq() int { return a.seq }

func (a *Anchor) Decoration() string { return a.decoration }
