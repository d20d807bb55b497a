package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopier_Copy(t *testing.T) {
	t.Run("Clipboard", func(t *testing.T) {
		var got string
		c := &Copier{write: func(s string) error { got = s; return nil }}

		method, err := c.Copy("ABC123")
		require.NoError(t, err)
		assert.Equal(t, MethodClipboard, method)
		assert.Equal(t, "ABC123", got)
	})

	t.Run("Fallback", func(t *testing.T) {
		var out bytes.Buffer
		c := (&Copier{write: func(string) error { return errors.New("no xclip") }}).WithFallback(&out)

		method, err := c.Copy("ABC123")
		require.NoError(t, err)
		assert.Equal(t, MethodManual, method)
		assert.Equal(t, "Copy this:\nABC123\n", out.String())
	})

	t.Run("NoFallback", func(t *testing.T) {
		c := &Copier{write: func(string) error { return errors.New("no xclip") }}

		_, err := c.Copy("ABC123")
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		c := &Copier{write: func(string) error { t.Fatal("write called"); return nil }}

		_, err := c.Copy("")
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestCopier_CopyLines(t *testing.T) {
	var got string
	c := &Copier{write: func(s string) error { got = s; return nil }}

	_, err := c.CopyLines([]string{"A1", "B2", "C3"})
	require.NoError(t, err)
	assert.Equal(t, "A1\nB2\nC3", got)

	_, err = c.CopyLines(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}
