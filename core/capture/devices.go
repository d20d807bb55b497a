package capture

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// rearCamera matches labels of cameras facing away from the user.
var rearCamera = regexp.MustCompile(`(?i)back|rear|environment`)

// Device is a video input device.
type Device struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// ListDevices enumerates V4L2 video devices with their sysfs labels.
func ListDevices() ([]Device, error) {
	return listDevices("/dev", "/sys/class/video4linux")
}

func listDevices(devDir, sysDir string) ([]Device, error) {
	paths, err := filepath.Glob(filepath.Join(devDir, "video*"))
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		label := ""
		if b, err := os.ReadFile(filepath.Join(sysDir, name, "name")); err == nil {
			label = strings.TrimSpace(string(b))
		}
		devices = append(devices, Device{Path: p, Label: label})
	}

	sort.Slice(devices, func(i, j int) bool {
		return deviceNumber(devices[i].Path) < deviceNumber(devices[j].Path)
	})

	return devices, nil
}

// PreferredDevice picks the camera to open: an explicit hint wins, then the
// first device labelled as a rear camera, then the last device. Labels may be
// empty until permission is granted, in which case the rear camera is often
// the last entry.
func PreferredDevice(devices []Device, hint string) string {
	if hint != "" {
		return hint
	}
	for _, d := range devices {
		if rearCamera.MatchString(d.Label) {
			return d.Path
		}
	}
	if len(devices) == 0 {
		return ""
	}
	return devices[len(devices)-1].Path
}

func deviceNumber(path string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(path), "video"))
	if err != nil {
		return -1
	}
	return n
}
