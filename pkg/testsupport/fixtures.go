// Package testsupport builds page fixtures for the hostelui tests: the
// preference form and the recommendations page, rendered the way the server
// templates render them.
package testsupport

import (
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/goliatone/go-hostelui/pkg/dom/htmldoc"
)

// Hostel is the server-side view of a card.
type Hostel struct {
	ID          string
	Name        string
	Score       string
	Rent        string
	RoomTypes   []string
	HostelType  string
	Amenities   []string
	Address     string
	Contact     string
	Safety      string
	Rating      string
	Cleanliness string
	Distance    string
	Colleges    []string
}

// SampleHostels mirrors the seed data the site ships with, scored for a
// typical preference.
func SampleHostels() []Hostel {
	return []Hostel{
		{ID: "1", Name: "Sunshine Girls Hostel", Score: "86.2", Rent: "8000", RoomTypes: []string{"single", "double"}, HostelType: "hostel", Amenities: []string{"food", "wifi", "laundry", "AC", "gym"}, Address: "123 College Road", Contact: "9876543210", Safety: "4.5", Rating: "4.3", Cleanliness: "4.2", Distance: "1.5", Colleges: []string{"Delhi University", "IP University"}},
		{ID: "2", Name: "Comfort PG for Ladies", Score: "71.4", Rent: "7000", RoomTypes: []string{"double", "shared"}, HostelType: "PG", Amenities: []string{"food", "wifi", "laundry"}, Address: "45 Park Street", Contact: "9876543211", Safety: "4.0", Rating: "3.9", Cleanliness: "3.8", Distance: "0.8", Colleges: []string{"Delhi University", "JNU"}},
		{ID: "3", Name: "Elite Women's Residence", Score: "58.9", Rent: "12000", RoomTypes: []string{"single"}, HostelType: "hostel", Amenities: []string{"food", "wifi", "laundry", "AC", "gym", "swimming_pool"}, Address: "78 Luxury Avenue", Contact: "9876543212", Safety: "4.8", Rating: "4.6", Cleanliness: "4.7", Distance: "2.5", Colleges: []string{"Delhi University", "IIT Delhi"}},
		{ID: "4", Name: "Budget Girls PG", Score: "44.0", Rent: "5000", RoomTypes: []string{"shared"}, HostelType: "PG", Amenities: []string{"wifi", "laundry"}, Address: "120 Economy Lane", Contact: "9876543213", Safety: "3.5", Rating: "3.4", Cleanliness: "3.2", Distance: "3.0", Colleges: []string{"IP University", "Jamia Millia Islamia"}},
		{ID: "5", Name: "Serene Sisters Hostel", Score: "79.5", Rent: "9000", RoomTypes: []string{"single", "double"}, HostelType: "hostel", Amenities: []string{"food", "wifi", "laundry", "AC"}, Address: "56 Serenity Road", Contact: "9876543214", Safety: "4.3", Rating: "4.2", Cleanliness: "4.0", Distance: "1.2", Colleges: []string{"JNU", "IP University"}},
		{ID: "6", Name: "Campus Corner PG", Score: "63.1", Rent: "6500", RoomTypes: []string{"double", "shared"}, HostelType: "PG", Amenities: []string{"food", "wifi"}, Address: "10 Campus Road", Contact: "9876543215", Safety: "3.8", Rating: "3.7", Cleanliness: "3.6", Distance: "0.5", Colleges: []string{"Delhi University", "IP University"}},
	}
}

// CardMarkup renders one recommendation card. Attribute values are escaped
// the way a server template would escape them.
func CardMarkup(h Hostel) string {
	attrs := []struct{ key, value string }{
		{"id", h.ID},
		{"name", h.Name},
		{"score", h.Score},
		{"rent", h.Rent},
		{"room-types", strings.Join(h.RoomTypes, ",")},
		{"hostel-type", h.HostelType},
		{"amenities", strings.Join(h.Amenities, ",")},
		{"address", h.Address},
		{"contact", h.Contact},
		{"safety", h.Safety},
		{"rating", h.Rating},
		{"cleanliness", h.Cleanliness},
		{"distance", h.Distance},
		{"colleges", strings.Join(h.Colleges, ",")},
	}
	var sb strings.Builder
	sb.WriteString(`<div class="col-md-6 recommendation-card"`)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		fmt.Fprintf(&sb, ` data-%s="%s"`, a.key, html.EscapeString(a.value))
	}
	sb.WriteString(`>`)
	fmt.Fprintf(&sb, `<h4>%s</h4>`, html.EscapeString(h.Name))
	fmt.Fprintf(&sb, `<span class="badge" data-bs-toggle="tooltip" title="Match score">%s%%</span>`, html.EscapeString(h.Score))
	fmt.Fprintf(&sb, `<button class="btn view-details" data-id="%s">View details</button>`, html.EscapeString(h.ID))
	sb.WriteString(`</div>`)
	return sb.String()
}

// RecommendationsPage renders the recommendations page with the given cards,
// the filter form, the empty-state banner and the detail modal.
func RecommendationsPage(hostels []Hostel) string {
	var cards strings.Builder
	for _, h := range hostels {
		cards.WriteString(CardMarkup(h))
	}
	return `<!DOCTYPE html><html><head><title>Recommendations</title></head><body>
<form id="filter-form">
  <input type="number" id="min-score" value="0">
  <input type="number" id="max-rent" value="">
  <select id="filter-room-type">
    <option value="any" selected>Any</option>
    <option value="single">Single</option>
    <option value="double">Double</option>
    <option value="shared">Shared</option>
    <option value="triple">Triple</option>
  </select>
  <select id="filter-hostel-type">
    <option value="any" selected>Any</option>
    <option value="hostel">Hostel</option>
    <option value="PG">PG</option>
  </select>
</form>
<div id="recommendations" class="row">` + cards.String() + `</div>
<div id="empty-results" style="display: none">No hostels match your filters.</div>
<div class="modal fade" id="hostelDetailModal" aria-hidden="true">
  <div class="modal-dialog"><div class="modal-content">
    <div class="modal-header"><h5 class="modal-title"></h5></div>
    <div class="modal-body"></div>
    <div class="modal-footer"><a id="contact-hostel" class="btn btn-primary" href="#">Contact</a></div>
  </div></div>
</div>
</body></html>`
}

// PreferencePage renders the preference form. sliderID and displayID name the
// budget slider pair so both page variants can be exercised.
func PreferencePage(sliderID, displayID string) string {
	return `<!DOCTYPE html><html><head><title>Preferences</title></head><body>
<form id="preference-form" action="/submit-preferences" method="post">
  <select id="college" name="college">
    <option value="">Choose...</option>
    <option value="Delhi University">Delhi University</option>
    <option value="IP University">IP University</option>
    <option value="JNU">JNU</option>
  </select>
  <div class="invalid-feedback" id="college-feedback"></div>

  <input type="range" id="` + sliderID + `" name="budget" min="3000" max="20000" step="500" value="8000">
  <span id="` + displayID + `"></span>
  <div id="` + sliderID + `-feedback"></div>

  <input type="radio" name="room_type" id="room-single" value="single">
  <input type="radio" name="room_type" id="room-double" value="double">
  <input type="radio" name="room_type" id="room-shared" value="shared">
  <div id="room-type-feedback"></div>

  <input type="radio" name="hostel_type" id="type-hostel" value="hostel">
  <input type="radio" name="hostel_type" id="type-pg" value="PG">
  <div id="hostel-type-feedback"></div>

  <input type="checkbox" name="amenities" id="amenity-food" value="food">
  <input type="checkbox" name="amenities" id="amenity-wifi" value="wifi">
  <input type="checkbox" name="amenities" id="amenity-ac" value="AC">
  <div id="amenities-feedback"></div>

  <button type="submit">Find hostels</button>
</form>
</body></html>`
}

// MustParse parses markup into a document, failing the test on error.
func MustParse(t testing.TB, markup string) *htmldoc.Document {
	t.Helper()

	doc, err := htmldoc.ParseString(markup)
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

// LoadRecommendations parses the recommendations page for hostels.
func LoadRecommendations(t testing.TB, hostels []Hostel) *htmldoc.Document {
	t.Helper()
	return MustParse(t, RecommendationsPage(hostels))
}

// LoadPreferences parses the preference form with the default budget ids.
func LoadPreferences(t testing.TB) *htmldoc.Document {
	t.Helper()
	return MustParse(t, PreferencePage("budget", "budget-display"))
}
