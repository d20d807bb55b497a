package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// preferredZoom is the zoom level applied when the camera supports zooming.
const preferredZoom = 2.0

// Scanner turns a continuously decoding camera into a one-scan-per-arm source.
//
// Each call to Next arms the scanner for exactly one decode. Values decoded
// while nobody is armed are discarded.
type Scanner struct {
	decoder Decoder
	device  string
	window  time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	starting bool
	armed    bool
	torchOn  bool
	events   <-chan Event
	cancel   context.CancelFunc
}

// NewScanner creates a scanner over decoder. A non-positive window uses DefaultArmTimeout.
func NewScanner(decoder Decoder, device string, window time.Duration, logger *zap.Logger) *Scanner {
	if window <= 0 {
		window = DefaultArmTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		decoder: decoder,
		device:  device,
		window:  window,
		logger:  logger,
	}
}

// Running reports whether the decoder has been started.
func (s *Scanner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events != nil
}

// Next arms the scanner and waits for one decoded value.
//
// The decoder is started on first use. Next returns ErrBusy when another Next
// is already armed, ErrAcquisitionTimeout when nothing is decoded within the
// window, and ctx.Err() when ctx is cancelled first.
func (s *Scanner) Next(ctx context.Context) (string, error) {
	if s.decoder == nil {
		return "", fmt.Errorf("%w: no decoder configured", ErrUnavailable)
	}

	s.mu.Lock()
	if s.armed || s.starting {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.armed = true
	events := s.events
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.armed = false
		s.mu.Unlock()
	}()

	if events == nil {
		var err error
		if events, err = s.start(); err != nil {
			return "", err
		}
	} else {
		drain(events)
	}

	armCtx, cancel := context.WithTimeout(ctx, s.window)
	defer cancel()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				s.clearStream(events)
				return "", ErrStopped
			}
			if ev.Err != nil {
				s.logger.Debug("Decode error", zap.Error(ev.Err))
				continue
			}
			text := strings.TrimSpace(ev.Text)
			if text == "" {
				continue
			}
			return text, nil
		case <-armCtx.Done():
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return "", ErrAcquisitionTimeout
		}
	}
}

// start acquires the camera. It is called with armed set, so concurrent
// starts are already excluded.
func (s *Scanner) start() (<-chan Event, error) {
	s.mu.Lock()
	s.starting = true
	s.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	events, err := s.decoder.Start(runCtx, s.device)

	s.mu.Lock()
	s.starting = false
	if err != nil {
		s.mu.Unlock()
		cancel()
		return nil, fmt.Errorf("failed to start camera: %w", err)
	}
	s.events = events
	s.cancel = cancel
	s.torchOn = false
	s.mu.Unlock()

	s.logger.Info("Camera started", zap.String("device", s.device))

	caps := s.decoder.Capabilities()
	if caps.Zoom {
		if err := s.decoder.SetZoom(clampZoom(preferredZoom, caps)); err != nil {
			s.logger.Debug("Zoom not applied", zap.Error(err))
		}
	}

	return events, nil
}

// Stop turns the torch off if it is on and releases the camera.
func (s *Scanner) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.events == nil {
		return nil
	}

	if s.torchOn {
		if err := s.decoder.SetTorch(false); err != nil {
			s.logger.Debug("Torch off failed", zap.Error(err))
		}
		s.torchOn = false
	}

	err := s.decoder.Stop()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.events = nil

	if err != nil {
		return fmt.Errorf("failed to stop camera: %w", err)
	}
	return nil
}

// ToggleTorch flips the torch and returns its new state.
func (s *Scanner) ToggleTorch() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.events == nil {
		return false, ErrNotStarted
	}
	if !s.decoder.Capabilities().Torch {
		return false, fmt.Errorf("%w: torch", ErrUnavailable)
	}

	want := !s.torchOn
	if err := s.decoder.SetTorch(want); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return s.torchOn, err
		}
		return s.torchOn, fmt.Errorf("%w: torch: %v", ErrUnavailable, err)
	}
	s.torchOn = want
	return want, nil
}

// Capabilities reports the decoder's controls, or none when no decoder is set.
func (s *Scanner) Capabilities() Capabilities {
	if s.decoder == nil {
		return Capabilities{}
	}
	return s.decoder.Capabilities()
}

func (s *Scanner) clearStream(events <-chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.events != events {
		return
	}
	if err := s.decoder.Stop(); err != nil {
		s.logger.Debug("Decoder release failed", zap.Error(err))
	}
	s.events = nil
	s.torchOn = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// drain discards events that arrived while the scanner was disarmed.
func drain(events <-chan Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func clampZoom(target float64, caps Capabilities) float64 {
	lo, hi := caps.ZoomMin, caps.ZoomMax
	if lo <= 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	if target < lo {
		return lo
	}
	if target > hi {
		return hi
	}
	return target
}
