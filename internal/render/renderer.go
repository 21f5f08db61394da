// Package render turns query results into the widget's HTML fragments.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rtgeorge/resourceboard/internal/catalog"
	"github.com/rtgeorge/resourceboard/internal/config"
)

// Renderer executes the widget templates against prepared view models.
type Renderer struct {
	cfg  *config.Config
	md   goldmark.Markdown
	tmpl *template.Template
}

// New parses the widget templates and returns a ready Renderer.
func New(cfg *config.Config) (*Renderer, error) {
	tmpl, err := template.New("widget").Parse(widgetTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing widget templates: %w", err)
	}
	return &Renderer{
		cfg:  cfg,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		tmpl: tmpl,
	}, nil
}

// Group pairs a category with its preview records for the grouped view.
type Group struct {
	Category catalog.Category
	Records  []catalog.Resource
}

type groupView struct {
	Heading     string
	Cards       []Card
	ViewMoreURL string
}

type entryView struct {
	Card      Card
	Separator bool
}

type pageView struct {
	Number  int
	URL     string
	Current bool
}

type singleView struct {
	Heading string
	Entries []entryView
	Pages   []pageView
	PrevURL string
	NextURL string
}

type sortView struct {
	Mode  catalog.SortMode
	Label string
}

type filtersView struct {
	ArchiveURL    string
	State         catalog.State
	Categories    []catalog.Category
	CategoryLabel string
	SortLabel     string
	Sorts         []sortView
}

type widgetView struct {
	ArchiveURL string
	Filters    filtersView
	Body       template.HTML
}

// Grouped renders the multi-category preview layout: a heading, up to
// per-group cards and a "view more" link per category, in the fixed
// category order. An empty category gets an explicit empty marker; an
// empty category universe collapses to a single marker.
func (r *Renderer) Grouped(groups []Group, st catalog.State) (template.HTML, error) {
	if len(groups) == 0 {
		return r.exec("no-categories", nil)
	}

	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		cards := make([]Card, 0, len(g.Records))
		for _, rec := range g.Records {
			cards = append(cards, r.BuildCard(rec, g.Category.Slug))
		}
		views = append(views, groupView{
			Heading:     r.groupHeading(g.Category),
			Cards:       cards,
			ViewMoreURL: st.WithCategory(g.Category.Slug).URL(r.cfg.ArchiveURL),
		})
	}

	return r.exec("grouped", struct{ Groups []groupView }{views})
}

// Single renders one category as a paginated grid. A separator follows
// every third card, counted by absolute position in the full result set,
// except after the final record overall. Page links preserve search,
// category and sort. An unknown slug yields the invalid-type state.
func (r *Renderer) Single(slug string, records []catalog.Resource, total int, st catalog.State) (template.HTML, error) {
	cat, ok := catalog.Lookup(slug)
	if !ok {
		return r.exec("invalid", nil)
	}

	page := st.Page
	if page < 1 {
		page = 1
	}

	entries := make([]entryView, 0, len(records))
	for i, rec := range records {
		pos := (page-1)*r.cfg.PerPage + i + 1
		entries = append(entries, entryView{
			Card:      r.BuildCard(rec, slug),
			Separator: pos%3 == 0 && pos < total,
		})
	}

	view := singleView{Heading: cat.Name, Entries: entries}

	if pageCount := catalog.PageCount(total, r.cfg.PerPage); pageCount > 1 {
		for n := 1; n <= pageCount; n++ {
			view.Pages = append(view.Pages, pageView{
				Number:  n,
				URL:     st.WithPage(n).URL(r.cfg.ArchiveURL),
				Current: n == page,
			})
		}
		if page > 1 {
			view.PrevURL = st.WithPage(page - 1).URL(r.cfg.ArchiveURL)
		}
		if page < pageCount {
			view.NextURL = st.WithPage(page + 1).URL(r.cfg.ArchiveURL)
		}
	}

	return r.exec("single", view)
}

// Widget wraps a listing body with the surrounding container and filter
// form so the fragment can be embedded as-is.
func (r *Renderer) Widget(st catalog.State, body template.HTML) (template.HTML, error) {
	categoryLabel := "All"
	if c, ok := catalog.Lookup(st.Category); ok {
		categoryLabel = c.Name
	}

	sorts := []sortView{
		{catalog.SortNewest, catalog.SortNewest.Label()},
		{catalog.SortOldest, catalog.SortOldest.Label()},
		{catalog.SortTitleAsc, catalog.SortTitleAsc.Label()},
		{catalog.SortTitleDesc, catalog.SortTitleDesc.Label()},
	}

	return r.exec("widget", widgetView{
		ArchiveURL: r.cfg.ArchiveURL,
		Body:       body,
		Filters: filtersView{
			ArchiveURL:    r.cfg.ArchiveURL,
			State:         st,
			Categories:    catalog.Known,
			CategoryLabel: categoryLabel,
			SortLabel:     st.Sort.Label(),
			Sorts:         sorts,
		},
	})
}

// Header renders the heading/description fragment, picking the copy pair
// for the active category filter and falling back field-by-field to the
// defaults.
func (r *Renderer) Header(st catalog.State) (template.HTML, error) {
	copyPair := r.cfg.Header.Default

	var override config.HeaderCopy
	switch st.Category {
	case catalog.SlugFreeDownloads:
		override = r.cfg.Header.FreeDownloads
	case catalog.SlugBookPurchase:
		override = r.cfg.Header.BookPurchase
	case catalog.SlugVideo:
		override = r.cfg.Header.Video
	}
	if override.H1 != "" {
		copyPair.H1 = override.H1
	}
	if override.Description != "" {
		copyPair.Description = override.Description
	}

	return r.exec("header", copyPair)
}

// groupHeading applies the configured heading override for a category,
// else its display name.
func (r *Renderer) groupHeading(cat catalog.Category) string {
	var override string
	switch cat.Slug {
	case catalog.SlugFreeDownloads:
		override = r.cfg.Headings.FreeDownloads
	case catalog.SlugBookPurchase:
		override = r.cfg.Headings.BookPurchase
	case catalog.SlugVideo:
		override = r.cfg.Headings.Video
	}
	if override != "" {
		return override
	}
	return cat.Name
}

func (r *Renderer) exec(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
