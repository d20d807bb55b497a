package capture

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// deviceToken is replaced by the selected device in decoder commands.
const deviceToken = "{device}"

// CommandDecoder runs an external barcode decoder (for example
// "zbarcam --raw --nodisplay {device}") and reads one value per stdout line.
type CommandDecoder struct {
	command string

	mu     sync.Mutex
	cmd    *exec.Cmd
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCommandDecoder creates a decoder for the given command line.
func NewCommandDecoder(command string) *CommandDecoder {
	return &CommandDecoder{command: command}
}

// Args expands the command line for device. The {device} token is dropped
// when no device is selected.
func (d *CommandDecoder) Args(device string) []string {
	fields := strings.Fields(d.command)
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.Contains(f, deviceToken) {
			if device == "" {
				continue
			}
			f = strings.ReplaceAll(f, deviceToken, device)
		}
		args = append(args, f)
	}
	return args
}

// Start spawns the decoder process.
func (d *CommandDecoder) Start(ctx context.Context, deviceHint string) (<-chan Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cmd != nil {
		return nil, ErrBusy
	}

	args := d.Args(deviceHint)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty decoder command", ErrUnavailable)
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open decoder output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	d.cmd = cmd
	d.cancel = cancel
	d.done = make(chan struct{})

	out := make(chan Event)
	go func(done chan struct{}) {
		defer close(done)
		defer close(out)

		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			select {
			case out <- Event{Text: sc.Text()}:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}

		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			select {
			case out <- Event{Err: fmt.Errorf("decoder exited: %w", err)}:
			case <-ctx.Done():
			}
		}
	}(d.done)

	return out, nil
}

// Stop terminates the decoder process and waits for it to exit.
func (d *CommandDecoder) Stop() error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cmd, d.cancel, d.done = nil, nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

// Capabilities reports no camera controls; external decoders own the device.
func (d *CommandDecoder) Capabilities() Capabilities {
	return Capabilities{}
}

// SetTorch is not supported.
func (d *CommandDecoder) SetTorch(bool) error {
	return ErrUnavailable
}

// SetZoom is not supported.
func (d *CommandDecoder) SetZoom(float64) error {
	return ErrUnavailable
}
