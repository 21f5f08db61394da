package server

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/rtgeorge/resourceboard/internal/catalog"
	"github.com/rtgeorge/resourceboard/internal/render"
)

// handleListing renders the full widget: the filter bar plus either the
// grouped preview layout or a single paginated category, driven by the
// request's query parameters.
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := catalog.ParseState(r.URL.Query())
	specs := catalog.Plan(st, catalog.Limits{
		PerGroup: s.cfg.PerGroup,
		PerPage:  s.cfg.PerPage,
	})

	var body template.HTML
	var err error
	if st.Category == catalog.AllCategories {
		groups := make([]render.Group, 0, len(specs))
		for _, spec := range specs {
			records, _, listErr := s.store.List(ctx, spec)
			if listErr != nil {
				s.renderError(w, listErr)
				return
			}
			cat, _ := catalog.Lookup(spec.Category)
			groups = append(groups, render.Group{Category: cat, Records: records})
		}
		body, err = s.renderer.Grouped(groups, st)
	} else if _, ok := catalog.Lookup(st.Category); !ok {
		// Unknown slugs get the invalid-type state without touching
		// the store.
		body, err = s.renderer.Single(st.Category, nil, 0, st)
	} else {
		var records []catalog.Resource
		var total int
		records, total, err = s.store.List(ctx, specs[0])
		if err != nil {
			s.renderError(w, err)
			return
		}
		body, err = s.renderer.Single(st.Category, records, total, st)
	}
	if err != nil {
		s.renderError(w, err)
		return
	}

	out, err := s.renderer.Widget(st, body)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.writeHTML(w, out)
}

// handleHeader renders the h1/description fragment for the active
// category filter.
func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	st := catalog.ParseState(r.URL.Query())
	out, err := s.renderer.Header(st)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.writeHTML(w, out)
}

// handleCategories lists the known categories as JSON.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	type categoryJSON struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	out := make([]categoryJSON, 0, len(catalog.Known))
	for _, c := range catalog.Known {
		out = append(out, categoryJSON{Slug: c.Slug, Name: c.Name})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("encoding categories: %v", err)
	}
}

func (s *Server) writeHTML(w http.ResponseWriter, out template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	log.Printf("rendering widget: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
