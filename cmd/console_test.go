package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stock-audit/core/capture"
	"stock-audit/core/clipboard"
	"stock-audit/feature/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConsole(t *testing.T, mode string, scanner *capture.Scanner) (*console, *bytes.Buffer) {
	t.Helper()
	svc := audit.NewService(nil, audit.Options{}, nil, nil)
	_, err := svc.SelectMode(mode)
	require.NoError(t, err)

	var out bytes.Buffer
	return &console{
		svc:     svc,
		scanner: scanner,
		copier:  clipboard.NewFunc(func(string) error { return errors.New("no clipboard") }).WithFallback(&out),
		out:     &out,
		logger:  zap.NewNop(),
	}, &out
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "march.csv")
	content := "Serial No,Part\nABC123,Widget\nDEF456,Gadget\nGHI789,Widget\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConsole_AuditSession(t *testing.T) {
	c, out := newTestConsole(t, "audit", nil)
	path := writeManifest(t)

	input := strings.Join([]string{
		":load " + path,
		"abc123",
		"ABC123 ",
		"xyz999",
		"",
		":next",
		":missing",
		":scanned",
		":quit",
		"never-read",
	}, "\n")

	require.NoError(t, c.run(context.Background(), strings.NewReader(input)))

	text := out.String()
	assert.Contains(t, text, "Loaded 3 expected from "+path+" (serial: Serial No, part: Part).")
	assert.Contains(t, text, "Expected: ABC123 • Widget")
	assert.Contains(t, text, "! Serial Already Scanned: ABC123")
	assert.Contains(t, text, "! Extra (not on list): XYZ999")
	assert.Contains(t, text, "Expected: 3  Matched: 1  Missing: 2  Extra: 1  Duplicates: 1  Scanned: 2")
	assert.Contains(t, text, "Copy this:\nDEF456\n")
	assert.Contains(t, text, "Copy this:\nGHI789\n")
	assert.Contains(t, text, "Copy this:\nABC123\nXYZ999\n")
	assert.NotContains(t, text, "NEVER-READ")

	// :next marked DEF456 handled, so only GHI789 remains.
	assert.Equal(t, []string{"GHI789"}, c.svc.Missing())
}

func TestConsole_Commands(t *testing.T) {
	c, out := newTestConsole(t, "audit", nil)
	ctx := context.Background()

	c.handle(ctx, ":columns Serial")
	assert.Contains(t, out.String(), "Error: no manifest loaded")

	out.Reset()
	c.handle(ctx, ":load "+writeManifest(t))
	c.handle(ctx, ":columns Part")
	assert.Contains(t, out.String(), "(serial: Part, part: (None))")

	out.Reset()
	c.handle(ctx, ":mode quick")
	c.handle(ctx, "a1")
	c.handle(ctx, ":next")
	assert.Contains(t, out.String(), "New quick session.")
	assert.Contains(t, out.String(), "Added: A1")
	assert.Contains(t, out.String(), "Missing: —")
	assert.Contains(t, out.String(), "No missing items.")

	out.Reset()
	c.handle(ctx, ":mode party")
	c.handle(ctx, ":bogus")
	c.handle(ctx, ":scan")
	c.handle(ctx, ":torch")
	text := out.String()
	assert.Contains(t, text, "Error: invalid session mode")
	assert.Contains(t, text, `Unknown command "bogus"`)
	assert.Contains(t, text, "No decoder configured.")
	assert.Contains(t, text, "Torch not supported on this device.")

	assert.True(t, c.handle(ctx, ":quit"))
}

func TestConsole_Export(t *testing.T) {
	c, out := newTestConsole(t, "quick", nil)
	ctx := context.Background()
	c.handle(ctx, "A1")

	path := filepath.Join(t.TempDir(), "report.yaml")
	c.handle(ctx, ":export "+path)
	assert.Contains(t, out.String(), "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scanned:\n    - A1")

	out.Reset()
	c.handle(ctx, ":upload")
	assert.Contains(t, out.String(), "Error: storage not configured")
}

func TestConsole_Scan(t *testing.T) {
	t.Run("Decoded", func(t *testing.T) {
		scanner := capture.NewScanner(capture.NewLineDecoder(strings.NewReader("qqq000\n")), "", time.Second, nil)
		c, out := newTestConsole(t, "quick", scanner)

		c.handle(context.Background(), ":scan")
		assert.Contains(t, out.String(), "Added: QQQ000")

		c.handle(context.Background(), ":torch")
		assert.Contains(t, out.String(), "Torch not supported on this device.")

		c.handle(context.Background(), ":stop")
		assert.Contains(t, out.String(), "Camera stopped.")
		assert.False(t, scanner.Running())
	})

	t.Run("Timeout", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()
		scanner := capture.NewScanner(capture.NewLineDecoder(r), "", 20*time.Millisecond, nil)
		c, out := newTestConsole(t, "quick", scanner)

		c.handle(context.Background(), ":scan")
		assert.Contains(t, out.String(), "No barcode detected — try again")
	})
}
