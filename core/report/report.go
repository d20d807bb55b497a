package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stock-audit/core/manifest"
	"stock-audit/core/reconcile"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported report encoding.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is a report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts user input into a Format. Empty input selects fallback.
func ParseFormat(s string, fallback Format) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if fallback == "" {
			return FormatJSON, nil
		}
		return fallback, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Extension returns the file extension of the encoding, without the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// Report is the exported result of an audit session.
type Report struct {
	ID        string           `json:"id" yaml:"id"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Source    string           `json:"source,omitempty" yaml:"source,omitempty"`
	Columns   manifest.Columns `json:"columns" yaml:"columns"`

	reconcile.Snapshot `yaml:",inline"`
}

// New builds a report from a session snapshot.
func New(snap reconcile.Snapshot, source string, cols manifest.Columns) Report {
	return Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    source,
		Columns:   cols,
		Snapshot:  snap,
	}
}

// Encode serializes the report.
func (r Report) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ObjectKey returns the bucket key the report is uploaded under.
func (c Config) ObjectKey(r Report, f Format) string {
	prefix := c.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s-%s.%s", prefix, r.CreatedAt.Format("20060102-150405"), r.ID, f.Extension())
}
