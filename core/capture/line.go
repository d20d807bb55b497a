package capture

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// LineDecoder reads one decoded value per line from a reader, such as a
// keyboard-wedge scanner on standard input or a piped decoder.
//
// The reader is consumed by a single goroutine for the decoder's lifetime;
// Start and Stop only attach and detach a stream from it.
type LineDecoder struct {
	r     io.Reader
	once  sync.Once
	lines chan string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLineDecoder creates a decoder over r.
func NewLineDecoder(r io.Reader) *LineDecoder {
	return &LineDecoder{r: r, lines: make(chan string)}
}

// Start attaches a new event stream. deviceHint is ignored.
func (d *LineDecoder) Start(ctx context.Context, _ string) (<-chan Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return nil, ErrBusy
	}

	d.once.Do(func() { go d.pump() })

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			select {
			case line, ok := <-d.lines:
				if !ok {
					return
				}
				select {
				case out <- Event{Text: line}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Stop detaches the current stream.
func (d *LineDecoder) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	return nil
}

// Capabilities reports no camera controls.
func (d *LineDecoder) Capabilities() Capabilities {
	return Capabilities{}
}

// SetTorch is not supported.
func (d *LineDecoder) SetTorch(bool) error {
	return ErrUnavailable
}

// SetZoom is not supported.
func (d *LineDecoder) SetZoom(float64) error {
	return ErrUnavailable
}

func (d *LineDecoder) pump() {
	defer close(d.lines)
	sc := bufio.NewScanner(d.r)
	for sc.Scan() {
		d.lines <- sc.Text()
	}
}
