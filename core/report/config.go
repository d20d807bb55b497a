package report

// Config holds report export settings.
type Config struct {
	// Prefix is the bucket prefix under which reports are uploaded.
	Prefix string `mapstructure:"prefix" default:"reports/"`
	// Format is the default report encoding (json, yaml).
	Format string `mapstructure:"format" default:"json"`
}
