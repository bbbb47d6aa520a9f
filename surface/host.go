package surface

// Host is the editing-surface host: it owns named line buffers and the
// position anchors attached to them. The production implementation lives in
// the host package; tests use an in-memory fake that simulates row shifting
// under synthetic edits.
type Host interface {
	// CreateBuffer creates a new named buffer. It fails if a buffer with
	// that name already exists.
	CreateBuffer(name string) (Buffer, error)

	// Buffer looks up an existing buffer by name.
	Buffer(name string) (Buffer, bool)

	// Buffers returns the names of all buffers in creation order.
	Buffers() []string

	// RemoveBuffer destroys a buffer and all of its anchors.
	RemoveBuffer(name string)
}

// Buffer is one editable line buffer held by the host. Rows are 1-based.
//
// Anchors created on a buffer have push-down gravity: an insertion exactly at
// an anchor's row moves the anchor down, never leaves it above the new
// content. That choice determines which side of an edit a section boundary
// falls on.
type Buffer interface {
	Name() string

	// Lines returns the buffer's full content. The returned slice must not
	// be mutated by the caller.
	Lines() []string

	// SetLines replaces the buffer's full content. Existing anchor rows are
	// clamped into the new bounds; the dirty flag is left untouched.
	SetLines(lines []string)

	LineCount() int

	// CreateAnchor registers a push-down anchor at row, carrying an opaque
	// decoration payload. Anchors are valid until ClearAnchors.
	CreateAnchor(row int, decoration string) Anchor

	// Anchors returns all live anchors. Order is not guaranteed; callers
	// must sort.
	Anchors() []Anchor

	// ClearAnchors discards every anchor on the buffer.
	ClearAnchors()

	// Dirty reports whether the buffer has unsaved edits.
	Dirty() bool
	SetDirty(dirty bool)

	CursorRow() int
	SetCursorRow(row int)
}

// Anchor is a host-maintained position marker that stays attached to its row
// as unrelated text is inserted and deleted around it.
type Anchor interface {
	// Row returns the anchor's current 1-based row.
	Row() int

	// Seq returns the anchor's creation sequence number, monotonic per
	// buffer. It breaks ties when two anchors coincide on a row.
	Seq() int

	// Decoration returns the opaque payload the anchor was created with.
	Decoration() string
}
