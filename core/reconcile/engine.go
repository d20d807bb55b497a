package reconcile

import "stock-audit/core/identifier"

// Observe processes one scan or manual entry.
//
// Input that normalizes to "" is ignored and ok is false. A repeat of an
// already scanned identifier only increments the duplicate counter. A new
// identifier is added to the scanned set and dropped from the handled set.
// When a manifest is loaded in audit mode it is classified as matched or
// extra; otherwise it is captured.
func (s *Session) Observe(raw string) (out Outcome, ok bool) {
	id := identifier.Normalize(raw)
	if id == "" {
		return Outcome{}, false
	}

	if _, seen := s.scanned[id]; seen {
		s.duplicates++
		return Outcome{Kind: OutcomeDuplicate, ID: id}, true
	}

	s.scanned[id] = struct{}{}
	delete(s.handled, id)

	if !s.reconciling() {
		return Outcome{Kind: OutcomeCaptured, ID: id}, true
	}

	if entry, expected := s.expected[id]; expected {
		s.matched++
		return Outcome{Kind: OutcomeMatched, ID: id, Part: entry.Part}, true
	}

	s.extras[id] = struct{}{}
	return Outcome{Kind: OutcomeExtra, ID: id}, true
}
