package capture

import "time"

// DefaultArmTimeout is how long a single arm waits for a decode.
const DefaultArmTimeout = 8 * time.Second

// Config holds barcode capture settings.
type Config struct {
	// ArmTimeout bounds how long one scan waits for a decode before reporting "not found".
	ArmTimeout time.Duration `mapstructure:"arm_timeout" default:"8s"`
	// DecoderCommand is an external decoder emitting one decoded value per line.
	// The token {device} is replaced by the selected camera (e.g. "zbarcam --raw --nodisplay {device}").
	// When empty, decoded values are read from standard input.
	DecoderCommand string `mapstructure:"decoder_command" default:""`
	// Device is the preferred camera device; empty picks the rear camera when one can be identified.
	Device string `mapstructure:"device" default:""`
}
