package reconcile

import "sort"

// Missing regenerates the missing work queue: expected identifiers that are
// neither scanned nor handled, ordered by part then identifier. Outside audit
// mode the queue is always empty.
//
// The queue is recomputed on every call.
func (s *Session) Missing() []string {
	if s.mode != ModeAudit {
		return []string{}
	}

	missing := make([]string, 0, len(s.expected))
	for id := range s.expected {
		if _, ok := s.scanned[id]; ok {
			continue
		}
		if _, ok := s.handled[id]; ok {
			continue
		}
		missing = append(missing, id)
	}

	sort.Slice(missing, func(i, j int) bool {
		pi, pj := s.expected[missing[i]].Part, s.expected[missing[j]].Part
		if pi != pj {
			return pi < pj
		}
		return missing[i] < missing[j]
	})

	return missing
}

// ConsumeNext takes the head of the missing queue and marks it handled.
// It returns false when the queue is empty.
func (s *Session) ConsumeNext() (string, bool) {
	missing := s.Missing()
	if len(missing) == 0 {
		return "", false
	}
	next := missing[0]
	s.handled[next] = struct{}{}
	return next, true
}

// ConsumeAll returns the whole missing queue without marking anything handled.
func (s *Session) ConsumeAll() []string {
	return s.Missing()
}

// Handled returns the number of identifiers dismissed from the missing queue.
func (s *Session) Handled() int {
	return len(s.handled)
}
