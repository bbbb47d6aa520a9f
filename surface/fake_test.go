package surface

import (
	"fmt"
	"io/fs"
)

// fakeHost simulates the editing-surface host: line buffers whose anchors
// slide under synthetic edits with push-down gravity, the way a real host
// keeps position markers attached to rows.
type fakeHost struct {
	bufs  map[string]*fakeBuffer
	order []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{bufs: make(map[string]*fakeBuffer)}
}

func (h *fakeHost) CreateBuffer(name string) (Buffer, error) {
	if _, ok := h.bufs[name]; ok {
		return nil, fmt.Errorf("buffer %q already exists", name)
	}
	b := &fakeBuffer{name: name, cursor: 1}
	h.bufs[name] = b
	h.order = append(h.order, name)
	return b, nil
}

func (h *fakeHost) Buffer(name string) (Buffer, bool) {
	b, ok := h.bufs[name]
	if !ok {
		return nil, false
	}
	return b, true
}

func (h *fakeHost) Buffers() []string { return append([]string(nil), h.order...) }

func (h *fakeHost) RemoveBuffer(name string) {
	delete(h.bufs, name)
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

func (h *fakeHost) get(name string) *fakeBuffer { return h.bufs[name] }

type fakeBuffer struct {
	name    string
	lines   []string
	anchors []*fakeAnchor
	nextSeq int
	dirty   bool
	cursor  int
}

type fakeAnchor struct {
	row        int
	seq        int
	decoration string
}

func (a *fakeAnchor) Row() int           { return a.row }
func (a *fakeAnchor) Seq() int           { return a.seq }
func (a *fakeAnchor) Decoration() string { return a.decoration }

func (b *fakeBuffer) Name() string    { return b.name }
func (b *fakeBuffer) Lines() []string { return b.lines }
func (b *fakeBuffer) LineCount() int  { return len(b.lines) }

func (b *fakeBuffer) SetLines(lines []string) {
	b.lines = append([]string(nil), lines...)
	for _, a := range b.anchors {
		a.row = clampInt(a.row, 1, max1(len(b.lines)))
	}
	b.cursor = clampInt(b.cursor, 1, max1(len(b.lines)))
}

func (b *fakeBuffer) CreateAnchor(row int, decoration string) Anchor {
	a := &fakeAnchor{row: row, seq: b.nextSeq, decoration: decoration}
	b.nextSeq++
	b.anchors = append(b.anchors, a)
	return a
}

// Anchors returns the anchors in reverse creation order, so resolver tests
// cannot lean on enumeration order.
func (b *fakeBuffer) Anchors() []Anchor {
	out := make([]Anchor, 0, len(b.anchors))
	for i := len(b.anchors) - 1; i >= 0; i-- {
		out = append(out, b.anchors[i])
	}
	return out
}

func (b *fakeBuffer) ClearAnchors() { b.anchors = nil }

func (b *fakeBuffer) Dirty() bool         { return b.dirty }
func (b *fakeBuffer) SetDirty(dirty bool) { b.dirty = dirty }

func (b *fakeBuffer) CursorRow() int { return b.cursor }
func (b *fakeBuffer) SetCursorRow(row int) {
	b.cursor = clampInt(row, 1, max1(len(b.lines)))
}

// insert splices lines in so the first becomes the given 1-based row.
// Anchors at or below the row are pushed down.
func (b *fakeBuffer) insert(row int, lines ...string) {
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
	b.dirty = true
}

// remove deletes n lines starting at the 1-based row. Anchors below slide
// up; anchors inside the range collapse onto the row preceding the deletion.
func (b *fakeBuffer) remove(row, n int) {
	if row+n > len(b.lines)+1 {
		n = len(b.lines) + 1 - row
	}
	b.lines = append(b.lines[:row-1], b.lines[row+n-1:]...)
	for _, a := range b.anchors {
		switch {
		case a.row >= row+n:
			a.row -= n
		case a.row >= row:
			a.row = max1(row - 1)
		}
	}
	b.dirty = true
}

func (b *fakeBuffer) setLine(row int, text string) {
	b.lines[row-1] = text
	b.dirty = true
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// fakeFS is an in-memory filesystem collaborator with injectable failures.
type fakeFS struct {
	files    map[string][]string
	readErr  map[string]error
	writeErr map[string]error
	writes   []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:    make(map[string][]string),
		readErr:  make(map[string]error),
		writeErr: make(map[string]error),
	}
}

func (f *fakeFS) ReadLines(path string) ([]string, error) {
	if err := f.readErr[path]; err != nil {
		return nil, err
	}
	lines, ok := f.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]string(nil), lines...), nil
}

func (f *fakeFS) WriteLines(path string, lines []string) error {
	if err := f.writeErr[path]; err != nil {
		return err
	}
	f.files[path] = append([]string(nil), lines...)
	f.writes = append(f.writes, path)
	return nil
}

// numbered returns n lines "1".."n".
func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprint(i + 1)
	}
	return lines
}
