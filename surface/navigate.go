package surface

// SectionAt returns the section owning the given surface row, along with its
// index in registration order. Bounds must be current; callers that have
// edited the surface since the last resolve should call ResolveBounds first.
//
// The header line and rows inside a fully deleted section belong to no
// section.
func (s *Surface) SectionAt(row int) (*Section, int, bool) {
	for i, sec := range s.sections {
		if row >= sec.BufferStart && row <= sec.BufferEnd {
			return sec, i, true
		}
	}
	return nil, -1, false
}
