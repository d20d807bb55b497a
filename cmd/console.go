package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stock-audit/core/capture"
	"stock-audit/core/clipboard"
	"stock-audit/core/manifest"
	"stock-audit/core/reconcile"
	"stock-audit/feature/audit"

	"go.uber.org/zap"
)

const consoleHelp = `Type or scan an identifier and press enter to record it.
Commands:
  :mode audit|quick          start a new session
  :load <file>               load an XLSX/CSV manifest
  :fetch <object>            load a manifest from the bucket
  :columns <serial> [| part] re-select manifest columns
  :scan                      arm the camera for one barcode
  :torch                     toggle the torch
  :stop                      release the camera
  :next                      copy the next missing identifier
  :missing                   copy all missing identifiers
  :scanned                   copy all scanned identifiers
  :status                    show counters
  :export <file> [json|yaml] write a report to a file
  :upload [json|yaml]        upload a report to the bucket
  :quit                      leave
`

// console is the interactive audit session.
type console struct {
	svc     *audit.Service
	scanner *capture.Scanner
	copier  *clipboard.Copier
	out     io.Writer
	logger  *zap.Logger
}

// run reads lines from in until EOF, :quit or ctx is done.
func (c *console) run(ctx context.Context, in io.Reader) error {
	defer func() {
		if c.scanner != nil {
			if err := c.scanner.Stop(); err != nil {
				c.logger.Warn("Camera release failed", zap.Error(err))
			}
		}
	}()

	fmt.Fprintf(c.out, "Session mode: %s. Type :help for commands.\n", c.svc.Mode())

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if quit := c.handle(ctx, sc.Text()); quit {
			return nil
		}
	}
	return sc.Err()
}

// handle processes one input line and reports whether the session should end.
func (c *console) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		c.record(line)
		return false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "quit", "q", "exit":
		return true
	case "help", "h":
		fmt.Fprint(c.out, consoleHelp)
	case "mode":
		if _, err := c.svc.SelectMode(arg); err != nil {
			c.fail(err)
			return false
		}
		fmt.Fprintf(c.out, "New %s session.\n", c.svc.Mode())
	case "load":
		c.loadFile(arg)
	case "fetch":
		info, err := c.svc.LoadManifestFromStorage(ctx, arg, manifest.Columns{})
		if err != nil {
			c.fail(err)
			return false
		}
		c.printManifest(info)
	case "columns":
		serial, part, _ := strings.Cut(arg, "|")
		info, err := c.svc.SelectColumns(manifest.Columns{
			Serial: strings.TrimSpace(serial),
			Part:   strings.TrimSpace(part),
		})
		if err != nil {
			c.fail(err)
			return false
		}
		c.printManifest(info)
	case "scan":
		c.scan(ctx)
	case "torch":
		c.torch()
	case "stop":
		if c.scanner != nil {
			if err := c.scanner.Stop(); err != nil {
				c.fail(err)
				return false
			}
		}
		fmt.Fprintln(c.out, "Camera stopped.")
	case "next":
		id, _, ok := c.svc.NextMissing()
		if !ok {
			fmt.Fprintln(c.out, "No missing items.")
			return false
		}
		c.copy(id, "Copied next missing: "+id)
	case "missing":
		c.copyLines(c.svc.AllMissing(), "missing")
	case "scanned":
		c.copyLines(c.svc.Scanned(), "scanned")
	case "status":
		c.printStatus(c.svc.Snapshot().Summary)
	case "export":
		c.exportFile(arg)
	case "upload":
		result, err := c.svc.Export(ctx, arg)
		if err != nil {
			c.fail(err)
			return false
		}
		fmt.Fprintf(c.out, "Report uploaded to %s.\n", result.Key)
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type :help for commands.\n", name)
	}
	return false
}

func (c *console) record(value string) {
	out, snap, ok := c.svc.Scan(value)
	if !ok {
		return
	}
	prefix := ""
	if out.Warning() {
		prefix = "! "
	}
	fmt.Fprintf(c.out, "%s%s\n", prefix, out.Message())
	c.printStatus(snap.Summary)
}

func (c *console) loadFile(path string) {
	if path == "" {
		fmt.Fprintln(c.out, "Usage: :load <file>")
		return
	}
	f, err := os.Open(path)
	if err != nil {
		c.fail(err)
		return
	}
	defer f.Close()

	info, err := c.svc.LoadManifest(path, f, manifest.Columns{})
	if err != nil {
		c.fail(err)
		return
	}
	c.printManifest(info)
}

func (c *console) scan(ctx context.Context) {
	if c.scanner == nil {
		fmt.Fprintln(c.out, "No decoder configured. Set SCAN_DECODER_COMMAND or type identifiers.")
		return
	}

	text, err := c.scanner.Next(ctx)
	switch {
	case errors.Is(err, capture.ErrAcquisitionTimeout):
		fmt.Fprintln(c.out, "No barcode detected — try again")
	case errors.Is(err, capture.ErrBusy):
		fmt.Fprintln(c.out, "Camera is already scanning.")
	case err != nil:
		c.fail(err)
	default:
		c.record(text)
	}
}

func (c *console) torch() {
	if c.scanner == nil {
		fmt.Fprintln(c.out, "Torch not supported on this device.")
		return
	}
	on, err := c.scanner.ToggleTorch()
	switch {
	case errors.Is(err, capture.ErrNotStarted):
		fmt.Fprintln(c.out, "Start the camera first (:scan).")
	case errors.Is(err, capture.ErrUnavailable):
		fmt.Fprintln(c.out, "Torch not supported on this device.")
	case err != nil:
		c.fail(err)
	case on:
		fmt.Fprintln(c.out, "Torch on.")
	default:
		fmt.Fprintln(c.out, "Torch off.")
	}
}

func (c *console) copy(text, done string) {
	method, err := c.copier.Copy(text)
	if err != nil {
		c.fail(err)
		return
	}
	if method == clipboard.MethodClipboard {
		fmt.Fprintln(c.out, done)
	}
}

func (c *console) copyLines(values []string, what string) {
	if len(values) == 0 {
		fmt.Fprintf(c.out, "Nothing %s.\n", what)
		return
	}
	method, err := c.copier.CopyLines(values)
	if err != nil {
		c.fail(err)
		return
	}
	if method == clipboard.MethodClipboard {
		fmt.Fprintf(c.out, "Copied %d %s.\n", len(values), what)
	}
}

func (c *console) exportFile(arg string) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		fmt.Fprintln(c.out, "Usage: :export <file> [json|yaml]")
		return
	}
	format := ""
	if len(fields) > 1 {
		format = fields[1]
	} else if strings.HasSuffix(fields[0], ".yaml") || strings.HasSuffix(fields[0], ".yml") {
		format = "yaml"
	}

	_, data, _, err := c.svc.BuildReport(format)
	if err != nil {
		c.fail(err)
		return
	}
	if err := os.WriteFile(fields[0], data, 0o644); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "Report written to %s.\n", fields[0])
}

func (c *console) printManifest(info audit.ManifestInfo) {
	part := info.Columns.Part
	if part == "" {
		part = "(None)"
	}
	fmt.Fprintf(c.out, "Loaded %d expected from %s (serial: %s, part: %s).\n",
		info.Expected, info.Source, info.Columns.Serial, part)
	fmt.Fprintf(c.out, "Columns: %s\n", strings.Join(info.Headers, ", "))
}

func (c *console) printStatus(sum reconcile.Summary) {
	fmt.Fprintf(c.out, "Expected: %s  Matched: %s  Missing: %s  Extra: %d  Duplicates: %d  Scanned: %d\n",
		optional(sum.Expected), optional(sum.Matched), optional(sum.Missing),
		sum.Extra, sum.Duplicates, sum.Scanned)
}

func (c *console) fail(err error) {
	c.logger.Debug("Console command failed", zap.Error(err))
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func optional(n *int) string {
	if n == nil {
		return "—"
	}
	return fmt.Sprint(*n)
}
