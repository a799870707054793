package services

import "time"

// idSource hands out unique ids derived from the wall clock, strictly
// increasing even when two ids are drawn in the same millisecond or when
// loaded data already carries a larger id.
type idSource struct {
	last int64
}

func (s *idSource) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

func (s *idSource) next() int64 {
	now := time.Now().UnixMilli()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return now
}
