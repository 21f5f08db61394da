package catalog

import "time"

// Category is one resource type term: a stable slug plus a display name.
// The slug universe is closed; see Known.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Category slugs.
const (
	SlugFreeDownloads = "free-downloads"
	SlugBookPurchase  = "book-purchase"
	SlugVideo         = "video"
)

// AllCategories is the sentinel category filter meaning "grouped view over
// every known category".
const AllCategories = "all"

// Known lists the resource categories in their fixed display order.
var Known = []Category{
	{Slug: SlugFreeDownloads, Name: "Free Downloads"},
	{Slug: SlugBookPurchase, Name: "Book Purchase"},
	{Slug: SlugVideo, Name: "Video"},
}

// Lookup resolves a slug against the known category set.
func Lookup(slug string) (Category, bool) {
	for _, c := range Known {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// Resource is one content record, read-only to the widget.
type Resource struct {
	ID           string    `yaml:"id"`
	CategorySlug string    `yaml:"category"`
	Title        string    `yaml:"title"`
	Excerpt      string    `yaml:"excerpt"`
	ThumbnailURL string    `yaml:"thumbnail"`
	Permalink    string    `yaml:"permalink"`
	DownloadURL  string    `yaml:"download_url"`
	PurchaseURL  string    `yaml:"purchase_url"`
	VideoURL     string    `yaml:"video_url"`
	PublishedAt  time.Time `yaml:"published"`
}

// SortMode is one of the four user-selectable sort orders.
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortOldest    SortMode = "oldest"
	SortTitleAsc  SortMode = "title-asc"
	SortTitleDesc SortMode = "title-desc"
)

// ParseSortMode normalizes user input to a SortMode. Unrecognized values
// fall back to SortNewest.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortOldest, SortTitleAsc, SortTitleDesc:
		return SortMode(s)
	default:
		return SortNewest
	}
}

// Label returns the display text shown in the sort dropdown.
func (m SortMode) Label() string {
	switch m {
	case SortOldest:
		return "Oldest"
	case SortTitleAsc:
		return "Title (A–Z)"
	case SortTitleDesc:
		return "Title (Z–A)"
	default:
		return "Newest"
	}
}

// Args maps the sort mode to its (orderby, order) pair.
func (m SortMode) Args() (orderBy, order string) {
	switch m {
	case SortOldest:
		return "date", "ASC"
	case SortTitleAsc:
		return "title", "ASC"
	case SortTitleDesc:
		return "title", "DESC"
	default:
		return "date", "DESC"
	}
}

// QuerySpec is one content-store query: filter, order and page window.
// PageSize is always positive; Page is 1-based.
type QuerySpec struct {
	Category string
	Search   string
	OrderBy  string
	Order    string
	PageSize int
	Page     int
}
