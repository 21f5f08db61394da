package catalog

import (
	"net/url"
	"testing"
)

func TestParseSortModeUnknownDefaultsToNewest(t *testing.T) {
	for _, input := range []string{"", "weird", "NEWEST", "title", "date-desc", "oldest "} {
		if got := ParseSortMode(input); got != SortNewest {
			t.Errorf("ParseSortMode(%q) = %q, want %q", input, got, SortNewest)
		}
	}
}

func TestSortModeArgs(t *testing.T) {
	tests := []struct {
		mode    SortMode
		orderBy string
		order   string
	}{
		{SortNewest, "date", "DESC"},
		{SortOldest, "date", "ASC"},
		{SortTitleAsc, "title", "ASC"},
		{SortTitleDesc, "title", "DESC"},
	}
	for _, tt := range tests {
		orderBy, order := tt.mode.Args()
		if orderBy != tt.orderBy || order != tt.order {
			t.Errorf("%s.Args() = (%q, %q), want (%q, %q)", tt.mode, orderBy, order, tt.orderBy, tt.order)
		}
	}
}

func TestPlanAllFansOutPerCategory(t *testing.T) {
	lim := Limits{PerGroup: 3, PerPage: 9}
	st := State{Search: "physics", Category: AllCategories, Sort: SortOldest, Page: 7}

	specs := Plan(st, lim)
	if len(specs) != len(Known) {
		t.Fatalf("plan returned %d specs, want %d", len(specs), len(Known))
	}
	for i, spec := range specs {
		if spec.Category != Known[i].Slug {
			t.Errorf("spec %d category = %q, want %q", i, spec.Category, Known[i].Slug)
		}
		if spec.PageSize != lim.PerGroup {
			t.Errorf("spec %d page size = %d, want per-group %d", i, spec.PageSize, lim.PerGroup)
		}
		// Grouped mode never paginates, whatever page was requested.
		if spec.Page != 1 {
			t.Errorf("spec %d page = %d, want 1", i, spec.Page)
		}
		if spec.Search != "physics" {
			t.Errorf("spec %d search = %q, want %q", i, spec.Search, "physics")
		}
		if spec.OrderBy != "date" || spec.Order != "ASC" {
			t.Errorf("spec %d order = %s %s, want date ASC", i, spec.OrderBy, spec.Order)
		}
	}
}

func TestPlanSingleCategory(t *testing.T) {
	lim := Limits{PerGroup: 3, PerPage: 9}

	specs := Plan(State{Category: SlugVideo, Sort: SortNewest, Page: 4}, lim)
	if len(specs) != 1 {
		t.Fatalf("plan returned %d specs, want 1", len(specs))
	}
	if specs[0].PageSize != lim.PerPage {
		t.Errorf("page size = %d, want per-page %d", specs[0].PageSize, lim.PerPage)
	}
	if specs[0].Page != 4 {
		t.Errorf("page = %d, want 4", specs[0].Page)
	}

	// Invalid page numbers clamp up to 1.
	specs = Plan(State{Category: SlugVideo, Sort: SortNewest, Page: -2}, lim)
	if specs[0].Page != 1 {
		t.Errorf("negative page = %d, want 1", specs[0].Page)
	}
}

func TestStateRoundTrip(t *testing.T) {
	states := []State{
		{Search: "", Category: AllCategories, Sort: SortNewest, Page: 1},
		{Search: "gravity", Category: SlugFreeDownloads, Sort: SortTitleDesc, Page: 3},
		{Search: "a b&c", Category: SlugBookPurchase, Sort: SortOldest, Page: 1},
	}
	lim := Limits{PerGroup: 3, PerPage: 9}

	for _, st := range states {
		decoded := ParseState(st.Values())
		if decoded != st {
			t.Errorf("round trip changed state: got %+v, want %+v", decoded, st)
		}

		// The plan computed from the decoded state must match the original plan.
		orig := Plan(st, lim)
		redo := Plan(decoded, lim)
		if len(orig) != len(redo) {
			t.Fatalf("plan length changed after round trip: %d vs %d", len(orig), len(redo))
		}
		for i := range orig {
			if orig[i] != redo[i] {
				t.Errorf("spec %d changed after round trip: got %+v, want %+v", i, redo[i], orig[i])
			}
		}
	}
}

func TestParseStateNormalizes(t *testing.T) {
	st := ParseState(url.Values{})
	if st.Category != AllCategories {
		t.Errorf("empty category = %q, want %q", st.Category, AllCategories)
	}
	if st.Sort != SortNewest {
		t.Errorf("empty sort = %q, want %q", st.Sort, SortNewest)
	}
	if st.Page != 1 {
		t.Errorf("empty page = %d, want 1", st.Page)
	}

	st = ParseState(url.Values{ParamPage: {"banana"}, ParamSort: {"sideways"}})
	if st.Page != 1 {
		t.Errorf("garbage page = %d, want 1", st.Page)
	}
	if st.Sort != SortNewest {
		t.Errorf("garbage sort = %q, want %q", st.Sort, SortNewest)
	}
}

func TestStateURLPreservesFilters(t *testing.T) {
	st := State{Search: "waves", Category: SlugVideo, Sort: SortTitleAsc, Page: 2}
	link := st.URL("/resources/")

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("URL produced unparseable link %q: %v", link, err)
	}
	q := parsed.Query()
	if q.Get(ParamSearch) != "waves" {
		t.Errorf("link lost search: %q", link)
	}
	if q.Get(ParamCategory) != SlugVideo {
		t.Errorf("link lost category: %q", link)
	}
	if q.Get(ParamSort) != string(SortTitleAsc) {
		t.Errorf("link lost sort: %q", link)
	}
	if q.Get(ParamPage) != "2" {
		t.Errorf("link lost page: %q", link)
	}
}

func TestLookup(t *testing.T) {
	if c, ok := Lookup(SlugVideo); !ok || c.Name != "Video" {
		t.Errorf("Lookup(video) = %+v, %v", c, ok)
	}
	if _, ok := Lookup("podcast"); ok {
		t.Error("Lookup should reject unknown slugs")
	}
}
