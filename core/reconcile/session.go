package reconcile

import (
	"fmt"

	"stock-audit/core/manifest"
)

// Session holds the state of one reconciliation session: the expected
// mapping, the scanned, extra and handled sets, and the counters.
//
// A Session is owned by its caller and is not safe for concurrent use.
// Callers that receive events concurrently must serialize them.
type Session struct {
	mode     Mode
	expected manifest.Expected
	scanned  map[string]struct{}
	extras   map[string]struct{}
	handled  map[string]struct{}

	duplicates int
	matched    int
}

// NewSession returns a session in the unselected mode with empty state.
func NewSession() *Session {
	s := &Session{}
	s.reset()
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SelectMode enters mode m and clears all session state. Re-selecting the
// current mode is allowed and still resets.
func (s *Session) SelectMode(m Mode) error {
	if m != ModeAudit && m != ModeQuickCapture {
		return fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
	s.mode = m
	s.reset()
	return nil
}

// LoadExpected replaces the expected mapping. Every already scanned
// identifier is re-tested against the new mapping, so matched and extra
// membership is recomputed, and the handled set is cleared.
//
// The mapping is owned by the session after the call.
func (s *Session) LoadExpected(expected manifest.Expected) error {
	if s.mode != ModeAudit {
		return ErrNotAuditMode
	}
	if expected == nil {
		expected = manifest.Expected{}
	}

	s.expected = expected
	s.matched = 0
	s.extras = make(map[string]struct{})
	for id := range s.scanned {
		if s.expected.Has(id) {
			s.matched++
		} else if len(s.expected) > 0 {
			s.extras[id] = struct{}{}
		}
	}
	s.handled = make(map[string]struct{})

	return nil
}

// Expected returns the number of expected identifiers.
func (s *Session) Expected() int {
	return len(s.expected)
}

// IsExpected reports whether id is on the manifest. id must already be normalized.
func (s *Session) IsExpected(id string) bool {
	return s.expected.Has(id)
}

// Part returns the expected part of id, or "" when unknown.
func (s *Session) Part(id string) string {
	return s.expected[id].Part
}

// Matched returns the number of scanned identifiers present on the manifest.
func (s *Session) Matched() int {
	return s.matched
}

// Duplicates returns the number of repeat observations.
func (s *Session) Duplicates() int {
	return s.duplicates
}

// ScannedCount returns the number of unique scanned identifiers.
func (s *Session) ScannedCount() int {
	return len(s.scanned)
}

// HasScanned reports whether id has been scanned. id must already be normalized.
func (s *Session) HasScanned(id string) bool {
	_, ok := s.scanned[id]
	return ok
}

// reconciling reports whether scans are checked against a manifest.
func (s *Session) reconciling() bool {
	return s.mode == ModeAudit && len(s.expected) > 0
}

func (s *Session) reset() {
	s.expected = manifest.Expected{}
	s.scanned = make(map[string]struct{})
	s.extras = make(map[string]struct{})
	s.handled = make(map[string]struct{})
	s.duplicates = 0
	s.matched = 0
}
