package filter_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/dom"
	"github.com/goliatone/go-hostelui/pkg/dom/htmldoc"
	"github.com/goliatone/go-hostelui/pkg/filter"
	"github.com/goliatone/go-hostelui/pkg/testsupport"
)

func visibleIDs(doc *htmldoc.Document, cfg filter.Config) []string {
	var out []string
	for _, c := range card.Query(doc, cfg.CardClass) {
		if cfg.Visibility.Visible(c.Node) {
			out = append(out, c.Record.ID)
		}
	}
	return out
}

func bannerShown(doc *htmldoc.Document, cfg filter.Config) bool {
	return cfg.Visibility.Visible(doc.ByID(cfg.EmptyStateID))
}

func assertBannerConsistent(t *testing.T, doc *htmldoc.Document, cfg filter.Config) {
	t.Helper()
	anyVisible := len(visibleIDs(doc, cfg)) > 0
	if bannerShown(doc, cfg) == anyVisible {
		t.Fatalf("empty-state banner shown=%v while cards visible=%v", bannerShown(doc, cfg), anyVisible)
	}
}

func TestApply_Scenarios(t *testing.T) {
	custom := []testsupport.Hostel{
		{ID: "a", Name: "Pricey", Score: "90", Rent: "15000", RoomTypes: []string{"single"}, HostelType: "hostel"},
		{ID: "b", Name: "Mixed", Score: "75", Rent: "6000", RoomTypes: []string{"single", "shared"}, HostelType: "PG"},
		{ID: "c", Name: "Broken", Score: "not-a-score", Rent: "4000", RoomTypes: []string{"double"}, HostelType: "PG"},
	}

	cases := []struct {
		name     string
		criteria filter.Criteria
		want     []string
	}{
		{name: "unbounded shows all", criteria: filter.Unbounded(), want: []string{"a", "b", "c"}},
		{name: "score above any", criteria: filter.Criteria{MinScore: 101}, want: nil},
		{name: "rent over bound hidden", criteria: filter.Unbounded().WithMaxRent(10000), want: []string{"b", "c"}},
		{name: "room type in set", criteria: filter.Criteria{RoomType: "shared", HostelType: filter.Any}, want: []string{"b"}},
		{name: "room type absent", criteria: filter.Criteria{RoomType: "triple"}, want: nil},
		{name: "unparseable score fails positive threshold", criteria: filter.Criteria{MinScore: 1}, want: []string{"a", "b"}},
		{name: "hostel type", criteria: filter.Criteria{HostelType: "PG"}, want: []string{"b", "c"}},
		{name: "single mismatch hides", criteria: filter.Criteria{MinScore: 80, HostelType: "PG"}, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testsupport.LoadRecommendations(t, custom)
			cfg := filter.DefaultConfig()

			res := filter.Apply(doc, cfg, tc.criteria)
			if diff := cmp.Diff(tc.want, res.Visible); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, visibleIDs(doc, cfg)); diff != "" {
				t.Fatalf("document mismatch (-want +got):\n%s", diff)
			}
			if res.AnyVisible != (len(tc.want) > 0) {
				t.Fatalf("AnyVisible = %v", res.AnyVisible)
			}
			assertBannerConsistent(t, doc, cfg)
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	doc := testsupport.LoadRecommendations(t, testsupport.SampleHostels())
	cfg := filter.DefaultConfig()
	criteria := filter.Criteria{MinScore: 60, RoomType: "double"}.WithMaxRent(9000)

	first := filter.Apply(doc, cfg, criteria)
	snapshot := doc.String()
	second := filter.Apply(doc, cfg, criteria)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-apply changed result (-first +second):\n%s", diff)
	}
	if doc.String() != snapshot {
		t.Fatalf("re-apply changed the document")
	}
	if diff := cmp.Diff([]string{"1", "2", "5", "6"}, first.Visible); diff != "" {
		t.Fatalf("visible mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_MonotonicInMinScore(t *testing.T) {
	doc := testsupport.LoadRecommendations(t, testsupport.SampleHostels())
	cfg := filter.DefaultConfig()

	previous := map[string]bool{}
	for _, h := range testsupport.SampleHostels() {
		previous[h.ID] = true
	}
	for score := 0; score <= 110; score += 5 {
		res := filter.Apply(doc, cfg, filter.Criteria{MinScore: float64(score)})
		current := map[string]bool{}
		for _, id := range res.Visible {
			if !previous[id] {
				t.Fatalf("raising minScore to %d revealed card %s", score, id)
			}
			current[id] = true
		}
		previous = current
		assertBannerConsistent(t, doc, cfg)
	}
	if len(previous) != 0 {
		t.Fatalf("expected no cards above 110, got %v", previous)
	}
}

func TestApply_ClassVisibility(t *testing.T) {
	doc := testsupport.LoadRecommendations(t, testsupport.SampleHostels())
	cfg := filter.DefaultConfig()
	cfg.Visibility = dom.Visibility{Mode: dom.VisibilityClass, HiddenClass: "hidden"}

	filter.Apply(doc, cfg, filter.Criteria{HostelType: "hostel"})
	for _, c := range card.Query(doc, cfg.CardClass) {
		wantHidden := c.Record.HostelType != "hostel"
		if c.Node.HasClass("hidden") != wantHidden {
			t.Fatalf("card %s hidden=%v, want %v", c.Record.ID, c.Node.HasClass("hidden"), wantHidden)
		}
		if c.Node.Style("display") != "" {
			t.Fatalf("class mode must not write inline styles")
		}
	}
	if !doc.ByID(cfg.EmptyStateID).HasClass("hidden") {
		t.Fatalf("banner should be hidden while hostels are visible")
	}
}

func TestReadCriteria(t *testing.T) {
	cases := []struct {
		minScore, maxRent, room, hostel string
		want                            filter.Criteria
	}{
		{"0", "", "any", "any", filter.Unbounded()},
		{"60", "9000", "shared", "PG", filter.Criteria{MinScore: 60, RoomType: "shared", HostelType: "PG"}.WithMaxRent(9000)},
		{"7.9", "0", "", "any", filter.Criteria{MinScore: 7, RoomType: filter.Any, HostelType: filter.Any}},
		{"abc", "lots", "any", "any", filter.Unbounded()},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			doc := testsupport.LoadRecommendations(t, nil)
			doc.ByID("min-score").SetValue(tc.minScore)
			doc.ByID("max-rent").SetValue(tc.maxRent)
			doc.ByID("filter-room-type").SetValue(tc.room)
			doc.ByID("filter-hostel-type").SetValue(tc.hostel)

			got := filter.ReadCriteria(doc, filter.DefaultControls())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCriteria_MissingControls(t *testing.T) {
	doc := testsupport.MustParse(t, `<html><body></body></html>`)
	if diff := cmp.Diff(filter.Unbounded(), filter.ReadCriteria(doc, filter.DefaultControls())); diff != "" {
		t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_RefiltersOnChange(t *testing.T) {
	doc := testsupport.LoadRecommendations(t, testsupport.SampleHostels())
	cfg := filter.DefaultConfig()

	var results []filter.Result
	if !filter.Bind(doc, cfg, func(res filter.Result) { results = append(results, res) }) {
		t.Fatalf("expected filter bound")
	}

	room := doc.ByID("filter-room-type")
	room.SetValue("shared")
	doc.Dispatch(room, "change")
	if diff := cmp.Diff([]string{"2", "4", "6"}, visibleIDs(doc, cfg)); diff != "" {
		t.Fatalf("visible mismatch (-want +got):\n%s", diff)
	}

	doc.ByID("min-score").SetValue("95")
	evt := doc.DispatchID("filter-form", "submit")
	if !evt.DefaultPrevented() {
		t.Fatalf("filter submit must not navigate")
	}
	if len(visibleIDs(doc, cfg)) != 0 || !bannerShown(doc, cfg) {
		t.Fatalf("expected empty state after submit")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 observed passes, got %d", len(results))
	}
}
