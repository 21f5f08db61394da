package render

import (
	"bytes"
	"html/template"

	"github.com/rtgeorge/resourceboard/internal/catalog"
)

// Card kinds, one per known category plus the fallback.
const (
	KindFree  = "free"
	KindBook  = "book"
	KindVideo = "video"
	KindPlain = "plain"
)

// Card is the per-record view model handed to the card template. It is
// built fresh on every render and discarded with the output.
type Card struct {
	Kind        string
	Title       string
	ExcerptHTML template.HTML
	Link        string
	Thumbnail   string
	VideoURL    string
}

// BuildCard shapes a record into its category's card form. Unknown slugs
// get a plain permalink card with no enrichment.
func (r *Renderer) BuildCard(rec catalog.Resource, slug string) Card {
	c := Card{Title: rec.Title, Link: rec.Permalink}

	switch slug {
	case catalog.SlugFreeDownloads:
		c.Kind = KindFree
		if rec.DownloadURL != "" {
			c.Link = rec.DownloadURL
		}
		c.Thumbnail = rec.ThumbnailURL
		c.ExcerptHTML = r.excerptHTML(rec.Excerpt)
	case catalog.SlugBookPurchase:
		c.Kind = KindBook
		if rec.PurchaseURL != "" {
			c.Link = rec.PurchaseURL
		}
		c.Thumbnail = rec.ThumbnailURL
	case catalog.SlugVideo:
		c.Kind = KindVideo
		c.Link = ""
		c.VideoURL = rec.VideoURL
		c.Thumbnail = rec.ThumbnailURL
		if c.Thumbnail == "" {
			c.Thumbnail = r.cfg.Placeholder()
		}
		c.ExcerptHTML = r.excerptHTML(rec.Excerpt)
	default:
		c.Kind = KindPlain
	}

	return c
}

// excerptHTML renders the record's markdown excerpt. Goldmark escapes raw
// HTML by default, so author markup cannot smuggle tags through.
func (r *Renderer) excerptHTML(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// Fall back to the escaped source text.
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
