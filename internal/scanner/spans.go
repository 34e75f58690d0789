package scanner

import "sort"

// spanSet holds the exclusion spans of one file, sorted by start
// offset. Definition value spans land here so the literal pass never
// double-counts the same source text. Plain interval containment over a
// sorted slice; the scale never justifies an interval tree.
type spanSet struct {
	spans []span
}

type span struct {
	start int
	end   int
}

// add inserts a span, keeping the slice sorted. Insertions arrive in
// ascending order from the definition pass, so the common case appends.
func (s *spanSet) add(start, end int) {
	sp := span{start: start, end: end}

	if n := len(s.spans); n == 0 || s.spans[n-1].start <= start {
		s.spans = append(s.spans, sp)

		return
	}

	idx := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].start > start
	})

	s.spans = append(s.spans, span{})
	copy(s.spans[idx+1:], s.spans[idx:])
	s.spans[idx] = sp
}

// overlaps reports whether [start, end) intersects any stored span,
// located via binary search over the sorted starts.
func (s *spanSet) overlaps(start, end int) bool {
	// First span ending after the candidate's start.
	idx := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].end > start
	})

	return idx < len(s.spans) && s.spans[idx].start < end
}
