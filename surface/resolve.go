package surface

import "sort"

// ResolveBounds re-derives every section's BufferStart and BufferEnd from
// the anchors' current rows.
//
// Anchors are enumerated from the host (order not guaranteed), stably sorted
// ascending by current row with ties broken by creation sequence — two
// anchors coincide when an intervening section's content was entirely
// deleted — and paired positionally with the sections in registration order.
// Anchors only slide under edits, they never cross, so the sorted order is
// the registration order.
//
// The result is always a complete, gap-free, non-overlapping partition of
// the surface body: section i starts one row below its anchor, ends one row
// above section i+1's start, and the last section ends at the surface's
// total line count. A fully deleted section yields an empty span with
// BufferStart = BufferEnd + 1.
func (s *Surface) ResolveBounds() {
	anchors := s.buf.Anchors()
	sort.SliceStable(anchors, func(i, j int) bool {
		if anchors[i].Row() != anchors[j].Row() {
			return anchors[i].Row() < anchors[j].Row()
		}
		return anchors[i].Seq() < anchors[j].Seq()
	})

	n := len(s.sections)
	if len(anchors) < n {
		n = len(anchors)
	}
	total := s.buf.LineCount()

	for i := 0; i < n; i++ {
		s.sections[i].anchor = anchors[i]
		s.sections[i].BufferStart = anchors[i].Row() + 1
	}
	for i := 0; i < n; i++ {
		if i+1 < n {
			s.sections[i].BufferEnd = s.sections[i+1].BufferStart - 1
		} else {
			s.sections[i].BufferEnd = total
		}
	}
}
