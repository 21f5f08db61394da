package catalog

import (
	"net/url"
	"strconv"
)

// Query parameter names making up the listing URL contract.
const (
	ParamSearch   = "s"
	ParamCategory = "resource-type"
	ParamSort     = "sort"
	ParamPage     = "paged"
)

// State is the decoded listing state carried through URLs: search term,
// category filter (slug or "all"), sort mode and 1-based page number.
type State struct {
	Search   string
	Category string
	Sort     SortMode
	Page     int
}

// ParseState decodes listing state from query parameters. Missing or
// invalid values normalize: category defaults to "all", sort to newest,
// page clamps up to 1.
func ParseState(v url.Values) State {
	st := State{
		Search:   v.Get(ParamSearch),
		Category: v.Get(ParamCategory),
		Sort:     ParseSortMode(v.Get(ParamSort)),
		Page:     1,
	}
	if st.Category == "" {
		st.Category = AllCategories
	}
	if n, err := strconv.Atoi(v.Get(ParamPage)); err == nil && n > 1 {
		st.Page = n
	}
	return st
}

// Values encodes the state back into query parameters. Empty search and
// page 1 are omitted so links stay minimal; decoding the result
// reproduces the same state.
func (st State) Values() url.Values {
	v := url.Values{}
	if st.Search != "" {
		v.Set(ParamSearch, st.Search)
	}
	v.Set(ParamCategory, st.Category)
	v.Set(ParamSort, string(st.Sort))
	if st.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(st.Page))
	}
	return v
}

// WithCategory returns a copy of the state pointing at the given category
// on page 1, preserving search and sort.
func (st State) WithCategory(slug string) State {
	st.Category = slug
	st.Page = 1
	return st
}

// WithPage returns a copy of the state on the given page.
func (st State) WithPage(n int) State {
	if n < 1 {
		n = 1
	}
	st.Page = n
	return st
}

// URL renders the state as a link target under the given base URL.
func (st State) URL(base string) string {
	q := st.Values().Encode()
	if q == "" {
		return base
	}
	return base + "?" + q
}

// Limits carries the configured page sizes the planner needs.
type Limits struct {
	PerGroup int
	PerPage  int
}

// Plan translates listing state into content-store queries. The "all"
// sentinel fans out to one per-category preview query (page 1, PerGroup
// items); a specific category yields exactly one paginated query. Inputs
// are normalized, never rejected.
func Plan(st State, lim Limits) []QuerySpec {
	orderBy, order := st.Sort.Args()

	if st.Category == AllCategories {
		specs := make([]QuerySpec, 0, len(Known))
		for _, c := range Known {
			specs = append(specs, QuerySpec{
				Category: c.Slug,
				Search:   st.Search,
				OrderBy:  orderBy,
				Order:    order,
				PageSize: lim.PerGroup,
				Page:     1,
			})
		}
		return specs
	}

	page := st.Page
	if page < 1 {
		page = 1
	}
	return []QuerySpec{{
		Category: st.Category,
		Search:   st.Search,
		OrderBy:  orderBy,
		Order:    order,
		PageSize: lim.PerPage,
		Page:     page,
	}}
}
