package logger

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const rayIDKey = "ray_id"

// ErrUnknownFormat is returned for a log format other than json or console.
var ErrUnknownFormat = errors.New("unknown log format")

// New builds a zap logger from cfg. The debug level selects zap's
// development settings; every other level uses the production settings.
func New(cfg *Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var config zap.Config
	if level.Level() == zapcore.DebugLevel {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = level

	switch orDefault(cfg.Format, "json") {
	case "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	case "json":
		config.Encoding = "json"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	config.OutputPaths = []string{orDefault(cfg.Output, "stderr")}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns l tagged with the request's ray id, or l itself when the
// request carries none.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayIDKey).(string); ok && rid != "" {
		return l.With(zap.String(rayIDKey, rid))
	}
	return l
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
