package manifest

// Config holds manifest loading settings.
type Config struct {
	// SerialCandidates are header names tried, in priority order, when guessing the serial column.
	SerialCandidates []string `mapstructure:"serial_candidates" default:"Serial No,Serial,Serial Number,SN"`
	// PartCandidates are header names tried, in priority order, when guessing the part column.
	PartCandidates []string `mapstructure:"part_candidates" default:"Part,Item,Description"`
	// Prefix is the bucket prefix under which manifests are stored.
	Prefix string `mapstructure:"prefix" default:"manifests/"`
	// MaxUploadBytes caps the size of an uploaded manifest file.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" default:"20971520"`
}

// DefaultSerialCandidates is used when no serial candidates are configured.
var DefaultSerialCandidates = []string{"Serial No", "Serial", "Serial Number", "SN"}

// DefaultPartCandidates is used when no part candidates are configured.
var DefaultPartCandidates = []string{"Part", "Item", "Description"}

// SerialOrDefault returns the configured serial candidates or the defaults.
func (c Config) SerialOrDefault() []string {
	if len(c.SerialCandidates) == 0 {
		return DefaultSerialCandidates
	}
	return c.SerialCandidates
}

// PartOrDefault returns the configured part candidates or the defaults.
func (c Config) PartOrDefault() []string {
	if len(c.PartCandidates) == 0 {
		return DefaultPartCandidates
	}
	return c.PartCandidates
}
