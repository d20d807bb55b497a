package capture

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned when a capability (camera, torch, zoom) is not supported or was denied.
	ErrUnavailable = errors.New("capability unavailable")

	// ErrAcquisitionTimeout is returned when nothing was decoded within the armed window.
	ErrAcquisitionTimeout = errors.New("no barcode detected")

	// ErrBusy is returned when a start or an arm is already in flight.
	ErrBusy = errors.New("capture already in progress")

	// ErrStopped is returned when the decoder stream ends while armed.
	ErrStopped = errors.New("decoder stopped")

	// ErrNotStarted is returned by operations that need a running decoder.
	ErrNotStarted = errors.New("decoder not started")
)

// Event is one decode callback. Text is empty when the frame held no barcode.
type Event struct {
	Text string
	Err  error
}

// Capabilities describes optional camera controls.
type Capabilities struct {
	Torch   bool    `json:"torch"`
	Zoom    bool    `json:"zoom"`
	ZoomMin float64 `json:"zoom_min"`
	ZoomMax float64 `json:"zoom_max"`
}

// Decoder is the camera and barcode decoding capability.
type Decoder interface {
	// Start acquires the camera and streams decode events until ctx is done
	// or Stop is called. The channel is closed when the stream ends.
	Start(ctx context.Context, deviceHint string) (<-chan Event, error)

	// Stop releases all camera resources.
	Stop() error

	// Capabilities reports the controls supported by the running device.
	Capabilities() Capabilities

	// SetTorch switches the torch. It returns ErrUnavailable when unsupported.
	SetTorch(on bool) error

	// SetZoom applies a zoom level. It returns ErrUnavailable when unsupported.
	SetZoom(level float64) error
}
