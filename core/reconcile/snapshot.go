package reconcile

import "sort"

// ScannedSorted returns the scanned identifiers in lexicographic order.
func (s *Session) ScannedSorted() []string {
	return sortedKeys(s.scanned)
}

// ExtrasSorted returns the extra identifiers in lexicographic order.
func (s *Session) ExtrasSorted() []string {
	return sortedKeys(s.extras)
}

// Summary returns the session counters.
func (s *Session) Summary() Summary {
	return s.summary(len(s.Missing()))
}

// Snapshot recomputes every derived view of the session.
func (s *Session) Snapshot() Snapshot {
	missing := s.Missing()

	snap := Snapshot{
		Summary: s.summary(len(missing)),
		Scanned: s.ScannedSorted(),
		Extras:  s.ExtrasSorted(),
		Missing: missing,
	}

	if s.mode == ModeAudit {
		snap.Parts = make(map[string]string)
		for id, entry := range s.expected {
			if entry.Part != "" {
				snap.Parts[id] = entry.Part
			}
		}
	}

	return snap
}

func (s *Session) summary(missing int) Summary {
	sum := Summary{
		Mode:       s.mode.String(),
		Handled:    len(s.handled),
		Extra:      len(s.extras),
		Duplicates: s.duplicates,
		Scanned:    len(s.scanned),
	}

	if s.mode == ModeAudit {
		expected := len(s.expected)
		matched := s.matched
		sum.Expected = &expected
		sum.Matched = &matched
		sum.Missing = &missing
	}

	return sum
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
