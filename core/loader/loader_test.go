package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		audit := &stubFeature{name: "audit", enabled: true}
		history := &stubFeature{name: "history", enabled: false}

		mgr := NewManager()
		mgr.Register(audit)
		mgr.Register(history)

		loaded, err := mgr.LoadAll(fiber.New())
		require.NoError(t, err)
		assert.Equal(t, []string{"audit"}, loaded)
		assert.True(t, audit.loaded)
		assert.False(t, history.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("LoadError", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "audit", enabled: true, err: errors.New("boom")})

		_, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "audit")
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "audit", enabled: true})
		mgr.Register(&stubFeature{name: "audit", enabled: true})

		_, err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
	})
}
