package card_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/testsupport"
)

type attrs map[string]string

func (a attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

func TestParse_ReadsDataAttributes(t *testing.T) {
	rec := card.Parse(attrs{
		"data-id":          "7",
		"data-name":        "Lotus House",
		"data-score":       "72.5",
		"data-rent":        "6500",
		"data-room-types":  "single, shared,",
		"data-hostel-type": "PG",
		"data-amenities":   "wifi,swimming_pool",
		"data-colleges":    "JNU",
		"data-safety":      "4.1",
	})

	if rec.ID != "7" || rec.Name != "Lotus House" || rec.HostelType != "PG" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.Score != 72.5 {
		t.Fatalf("score: want 72.5, got %v", rec.Score)
	}
	if !rec.Rent.Known || rec.Rent.Value != 6500 {
		t.Fatalf("rent: got %+v", rec.Rent)
	}
	if diff := cmp.Diff([]string{"single", "shared"}, rec.RoomTypes); diff != "" {
		t.Fatalf("room types mismatch (-want +got):\n%s", diff)
	}
	if !rec.HasRoomType("shared") || rec.HasRoomType("triple") {
		t.Fatalf("HasRoomType mismatch for %v", rec.RoomTypes)
	}
	if rec.Distance != "" {
		t.Fatalf("absent distance should stay empty, got %q", rec.Distance)
	}
}

func TestParse_MalformedNumbersDegrade(t *testing.T) {
	rec := card.Parse(attrs{"data-score": "n/a", "data-rent": "call us"})
	if rec.Score != 0 {
		t.Fatalf("malformed score should read 0, got %v", rec.Score)
	}
	if rec.Rent.Known {
		t.Fatalf("malformed rent should be unknown, got %+v", rec.Rent)
	}
	if rec.Rent.Text != "call us" {
		t.Fatalf("rent text should be kept, got %q", rec.Rent.Text)
	}
}

func TestParseFloatAndInt(t *testing.T) {
	floats := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4.5", 4.5, true},
		{" 4.5/5 ", 4.5, true},
		{"12000 INR", 12000, true},
		{"-3", -3, true},
		{".5", 0.5, true},
		{"12.", 12, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tc := range floats {
		got, ok := card.ParseFloat(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseFloat(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	ints := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"60", 60, true},
		{"7.9", 7, true},
		{"+8", 8, true},
		{"x8", 0, false},
	}
	for _, tc := range ints {
		got, ok := card.ParseInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseInt(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestQueryAndFind(t *testing.T) {
	doc := testsupport.LoadRecommendations(t, testsupport.SampleHostels())

	cards := card.Query(doc, "")
	if len(cards) != 6 {
		t.Fatalf("expected 6 cards, got %d", len(cards))
	}
	if cards[2].Record.Name != "Elite Women's Residence" {
		t.Fatalf("unexpected third card %q", cards[2].Record.Name)
	}

	found, ok := card.Find(doc, card.DefaultClass, "4")
	if !ok || found.Record.Name != "Budget Girls PG" {
		t.Fatalf("find 4: got %+v, %v", found.Record, ok)
	}
	if _, ok := card.Find(doc, card.DefaultClass, "99"); ok {
		t.Fatalf("expected missing card")
	}
}
