package surface

import "fmt"

// Resize grows (positive delta) or shrinks (negative delta) the file-side
// window of the Partial section at index, then rebuilds the whole surface.
//
// Which boundary moves depends on where the cursor sits: at or before the
// section's midpoint the start boundary is adjusted, after it the end
// boundary. The adjusted boundary is clamped to the file's bounds and to not
// cross the other boundary.
//
// Because changing one section's window shifts every later section's offset,
// the entire surface and every anchor are regenerated from each section's
// current file range, re-read fresh from disk. The cursor is relocated to
// the row corresponding to the same file line it was on before, clamped into
// the resized section's new span. A resize is not a content edit: the dirty
// flag is cleared on success.
//
// Resizing a Full section, resizing while the surface has unsaved edits, or
// an out-of-range index performs no mutation and fails with
// ErrInvalidSectionState.
func (s *Surface) Resize(index, delta, cursorRow int) error {
	if s.buf.Dirty() {
		return fmt.Errorf("resize with unsaved edits: %w", ErrInvalidSectionState)
	}
	if index < 0 || index >= len(s.sections) {
		return fmt.Errorf("resize section %d of %d: %w", index, len(s.sections), ErrInvalidSectionState)
	}
	sec := s.sections[index]
	if sec.Kind != Partial {
		return fmt.Errorf("resize %s section %s: %w", sec.Kind, sec.Filename, ErrInvalidSectionState)
	}

	s.ResolveBounds()

	fileLines, err := s.fs.ReadLines(sec.Filename)
	if err != nil {
		return fmt.Errorf("resize %s: %w", sec.Filename, err)
	}

	// Cursor continuity: remember which file line the cursor sits on before
	// any boundary moves.
	fileLine := sec.FileStart + (cursorRow - sec.BufferStart)

	oldStart, oldEnd := sec.FileStart, sec.FileEnd
	mid := (sec.BufferStart + sec.BufferEnd) / 2
	if cursorRow <= mid {
		sec.FileStart = clampInt(sec.FileStart-delta, 1, sec.FileEnd)
	} else {
		sec.FileEnd = clampInt(sec.FileEnd+delta, sec.FileStart, len(fileLines))
	}

	specs := make([]FileSpec, len(s.sections))
	for i, v := range s.sections {
		specs[i] = v.Spec()
	}

	frags, kept, err := s.layout(specs)
	if err != nil {
		sec.FileStart, sec.FileEnd = oldStart, oldEnd
		return err
	}
	s.install(frags)

	// Files can vanish between the resize request and the rebuild; track
	// where the resized section ended up.
	newIndex := -1
	for i, specIndex := range kept {
		if specIndex == index {
			newIndex = i
			break
		}
	}
	if newIndex >= 0 {
		ns := s.sections[newIndex]
		row := ns.BufferStart + (fileLine - ns.FileStart)
		s.buf.SetCursorRow(clampInt(row, ns.BufferStart, ns.BufferEnd))
	}

	s.buf.SetDirty(false)
	return nil
}
