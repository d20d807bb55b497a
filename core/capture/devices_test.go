package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDevices(t *testing.T) {
	dev := t.TempDir()
	sys := t.TempDir()

	for _, name := range []string{"video0", "video2", "video10"} {
		require.NoError(t, os.WriteFile(filepath.Join(dev, name), nil, 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(sys, "video2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sys, "video2", "name"), []byte("Rear Camera\n"), 0o644))

	devices, err := listDevices(dev, sys)
	require.NoError(t, err)
	require.Len(t, devices, 3)

	assert.Equal(t, filepath.Join(dev, "video0"), devices[0].Path)
	assert.Equal(t, filepath.Join(dev, "video10"), devices[2].Path)
	assert.Equal(t, "Rear Camera", devices[1].Label)
}

func TestPreferredDevice(t *testing.T) {
	devices := []Device{
		{Path: "/dev/video0", Label: "Integrated Webcam"},
		{Path: "/dev/video2", Label: "USB Back Camera"},
		{Path: "/dev/video4"},
	}

	assert.Equal(t, "/dev/video9", PreferredDevice(devices, "/dev/video9"))
	assert.Equal(t, "/dev/video2", PreferredDevice(devices, ""))
	assert.Equal(t, "/dev/video4", PreferredDevice([]Device{{Path: "/dev/video0"}, {Path: "/dev/video4"}}, ""))
	assert.Empty(t, PreferredDevice(nil, ""))
}
