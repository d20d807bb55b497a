package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Method tells how a value reached the user.
type Method string

const (
	// MethodClipboard means the system clipboard accepted the value.
	MethodClipboard Method = "clipboard"
	// MethodManual means the value was printed for the user to copy by hand.
	MethodManual Method = "manual"
)

// Copier writes text to the system clipboard, optionally falling back to
// printing it when no clipboard is available (headless sessions, SSH).
type Copier struct {
	write    func(string) error
	fallback io.Writer
}

// New creates a Copier backed by the system clipboard.
func New() *Copier {
	return &Copier{write: clipboard.WriteAll}
}

// NewFunc creates a Copier writing through write instead of the system clipboard.
func NewFunc(write func(string) error) *Copier {
	return &Copier{write: write}
}

// WithFallback sets the writer used when the clipboard fails.
func (c *Copier) WithFallback(w io.Writer) *Copier {
	c.fallback = w
	return c
}

// Available reports whether a system clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the clipboard.
func (c *Copier) Copy(text string) (Method, error) {
	if text == "" {
		return "", ErrEmpty
	}

	err := c.write(text)
	if err == nil {
		return MethodClipboard, nil
	}

	if c.fallback == nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	if _, werr := fmt.Fprintf(c.fallback, "Copy this:\n%s\n", text); werr != nil {
		return "", fmt.Errorf("failed to print copy fallback: %w", werr)
	}
	return MethodManual, nil
}

// CopyLines copies values joined by newlines.
func (c *Copier) CopyLines(values []string) (Method, error) {
	return c.Copy(strings.Join(values, "\n"))
}
