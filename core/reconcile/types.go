package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned when selecting a mode that cannot be entered.
	ErrInvalidMode = errors.New("invalid session mode")

	// ErrNotAuditMode is returned when a manifest is loaded outside audit mode.
	ErrNotAuditMode = errors.New("manifest requires audit mode")
)

// Mode is the session mode.
type Mode string

const (
	// ModeUnselected is the initial mode before the worker picks one.
	ModeUnselected Mode = ""
	// ModeAudit reconciles scans against a loaded manifest.
	ModeAudit Mode = "audit"
	// ModeQuickCapture collects scans without a manifest.
	ModeQuickCapture Mode = "quick"
)

// ParseMode converts user input into a selectable mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "audit":
		return ModeAudit, nil
	case "quick", "quick_capture", "quickcapture":
		return ModeQuickCapture, nil
	default:
		return ModeUnselected, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// String returns a display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAudit:
		return "audit"
	case ModeQuickCapture:
		return "quick"
	default:
		return "unselected"
	}
}

// OutcomeKind classifies a scan observation.
type OutcomeKind string

const (
	// OutcomeMatched means the identifier was expected and is now scanned.
	OutcomeMatched OutcomeKind = "matched"
	// OutcomeExtra means the identifier is not on the manifest.
	OutcomeExtra OutcomeKind = "extra"
	// OutcomeDuplicate means the identifier had already been scanned.
	OutcomeDuplicate OutcomeKind = "duplicate"
	// OutcomeCaptured means the identifier was recorded without a manifest to check against.
	OutcomeCaptured OutcomeKind = "captured"
)

// Outcome is the result of observing one scan.
type Outcome struct {
	// Kind classifies the observation.
	Kind OutcomeKind `json:"kind"`

	// ID is the normalized identifier.
	ID string `json:"id"`

	// Part is the expected part for matched identifiers.
	Part string `json:"part,omitempty"`
}

// Message renders the status line shown to the worker after a scan.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeMatched:
		if o.Part != "" {
			return "Expected: " + o.ID + " • " + o.Part
		}
		return "Expected: " + o.ID
	case OutcomeExtra:
		return "Extra (not on list): " + o.ID
	case OutcomeDuplicate:
		return "Serial Already Scanned: " + o.ID
	default:
		return "Added: " + o.ID
	}
}

// Warning reports whether the outcome should be surfaced as a warning.
func (o Outcome) Warning() bool {
	return o.Kind == OutcomeExtra || o.Kind == OutcomeDuplicate
}

// Summary provides the session counters.
// Counts that only make sense in audit mode are nil otherwise.
type Summary struct {
	// Mode is the current session mode.
	Mode string `json:"mode" yaml:"mode"`

	// Expected is the number of identifiers on the manifest.
	Expected *int `json:"expected" yaml:"expected"`

	// Matched counts scanned identifiers present on the manifest.
	Matched *int `json:"matched" yaml:"matched"`

	// Missing is the length of the missing work queue.
	Missing *int `json:"missing" yaml:"missing"`

	// Handled counts identifiers dismissed from the missing queue.
	Handled int `json:"handled" yaml:"handled"`

	// Extra counts scanned identifiers absent from the manifest.
	Extra int `json:"extra" yaml:"extra"`

	// Duplicates counts repeat observations.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Scanned counts unique scanned identifiers.
	Scanned int `json:"scanned" yaml:"scanned"`
}

// Snapshot is the derived view of a session handed to the presentation layer.
type Snapshot struct {
	// Summary holds the counters.
	Summary Summary `json:"summary" yaml:"summary"`

	// Scanned lists unique scanned identifiers, sorted.
	Scanned []string `json:"scanned" yaml:"scanned"`

	// Extras lists scanned identifiers not on the manifest, sorted.
	Extras []string `json:"extras" yaml:"extras"`

	// Missing is the missing work queue in (part, identifier) order.
	Missing []string `json:"missing" yaml:"missing"`

	// Parts maps expected identifiers to their part (audit mode only, non-empty parts).
	Parts map[string]string `json:"parts,omitempty" yaml:"parts,omitempty"`
}
