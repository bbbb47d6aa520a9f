package surface

// Save reconciles the surface's edited content back into the source files.
//
// Sections are processed strictly in registration order, and each section
// reads its file fresh from disk at the moment it is processed. When two
// sections reference the same file, the second read therefore observes the
// first write, so edits to the same file compose instead of clobbering each
// other. (If an earlier write changed the file's line count, a later
// section's window is clamped to the file's current length before splicing;
// overlapping windows on one file remain the caller's risk.)
//
// Only files whose content actually changed are written; their names are
// returned. A read or write failure aborts only that section's contribution;
// the pass continues and the failures come back as a *SaveError. The dirty
// flag is cleared unconditionally afterwards.
func (s *Surface) Save() (changed []string, err error) {
	s.ResolveBounds()
	lines := s.buf.Lines()

	failed := make(map[string]error)
	for _, sec := range s.sections {
		edited := clipSpan(lines, sec.BufferStart, sec.BufferEnd)

		orig, rerr := s.fs.ReadLines(sec.Filename)
		if rerr != nil {
			failed[sec.Filename] = rerr
			continue
		}

		var next []string
		switch sec.Kind {
		case Full:
			next = edited
		case Partial:
			next = splice(orig, sec.FileStart, sec.FileEnd, edited)
		}

		if equalLines(next, orig) {
			continue
		}
		if werr := s.fs.WriteLines(sec.Filename, next); werr != nil {
			failed[sec.Filename] = werr
			continue
		}
		changed = append(changed, sec.Filename)
	}

	s.buf.SetDirty(false)

	if len(failed) > 0 {
		return changed, &SaveError{Failed: failed}
	}
	return changed, nil
}

// clipSpan extracts 1-based inclusive lines[start..end], never indexing past
// the slice. An inverted or out-of-range span yields nil.
func clipSpan(lines []string, start, end int) []string {
	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return nil
	}
	return lines[start-1 : end]
}

// splice replaces the 1-based inclusive window [start, end] of orig with
// edited, leaving the prefix and suffix untouched. The window is clamped to
// orig's current length.
func splice(orig []string, start, end int, edited []string) []string {
	start = clampInt(start, 1, len(orig)+1)
	end = clampInt(end, start-1, len(orig))

	next := make([]string, 0, len(orig)-(end-start+1)+len(edited))
	next = append(next, orig[:start-1]...)
	next = append(next, edited...)
	next = append(next, orig[end:]...)
	return next
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
