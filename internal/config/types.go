package config

// HeadingOverrides replaces the default group headings on the grouped
// listing view. Empty fields fall back to the category display name.
type HeadingOverrides struct {
	FreeDownloads string `yaml:"free_downloads" koanf:"free_downloads"`
	BookPurchase  string `yaml:"book_purchase" koanf:"book_purchase"`
	Video         string `yaml:"video" koanf:"video"`
}

// HeaderCopy is one h1/description pair for the page header fragment.
type HeaderCopy struct {
	H1          string `yaml:"h1" koanf:"h1"`
	Description string `yaml:"description" koanf:"description"`
}

// HeaderConfig holds the default header copy plus per-category overrides,
// selected by the active category filter.
type HeaderConfig struct {
	Default       HeaderCopy `yaml:"default" koanf:"default"`
	FreeDownloads HeaderCopy `yaml:"free_downloads" koanf:"free_downloads"`
	BookPurchase  HeaderCopy `yaml:"book_purchase" koanf:"book_purchase"`
	Video         HeaderCopy `yaml:"video" koanf:"video"`
}

// Config is the top-level resourceboard configuration, corresponding to
// .resourceboard.yml.
type Config struct {
	Port             int              `yaml:"port" koanf:"port"`
	DataDir          string           `yaml:"data_dir" koanf:"data_dir"`
	ArchiveURL       string           `yaml:"archive_url" koanf:"archive_url"`
	PerGroup         int              `yaml:"per_group" koanf:"per_group"`
	PerPage          int              `yaml:"per_page" koanf:"per_page"`
	VideoPlaceholder string           `yaml:"video_placeholder" koanf:"video_placeholder"`
	Headings         HeadingOverrides `yaml:"headings" koanf:"headings"`
	Header           HeaderConfig     `yaml:"header" koanf:"header"`
	AllowAllOrigins  bool             `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
