package config

// Display limits. Per-group and per-page sizes outside these bounds are
// clamped rather than rejected.
const (
	DefaultPerGroup = 3
	MaxPerGroup     = 50
	DefaultPerPage  = 9
	MaxPerPage      = 100
)

// DefaultPlaceholder is the built-in thumbnail used for video cards when a
// record has no thumbnail and no custom placeholder is configured.
const DefaultPlaceholder = "/assets/video_placeholder.png"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:       8470,
		DataDir:    "data",
		ArchiveURL: "/resources/",
		PerGroup:   DefaultPerGroup,
		PerPage:    DefaultPerPage,
	}
}

// Clamp normalizes the display sizes: zero or negative values reset to the
// defaults, oversized values are cut to the allowed maximum.
func (c *Config) Clamp() {
	if c.PerGroup < 1 {
		c.PerGroup = DefaultPerGroup
	}
	if c.PerGroup > MaxPerGroup {
		c.PerGroup = MaxPerGroup
	}
	if c.PerPage < 1 {
		c.PerPage = DefaultPerPage
	}
	if c.PerPage > MaxPerPage {
		c.PerPage = MaxPerPage
	}
}

// Placeholder returns the effective video placeholder image URL.
func (c *Config) Placeholder() string {
	if c.VideoPlaceholder != "" {
		return c.VideoPlaceholder
	}
	return DefaultPlaceholder
}
