// Package card reads the hostel attributes the server embeds on every
// recommendation card as data-* attributes.
package card

import (
	"strings"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// DefaultClass marks recommendation cards in the page markup.
const DefaultClass = "recommendation-card"

// Attribute keys, without the data- prefix.
const (
	AttrID          = "id"
	AttrName        = "name"
	AttrScore       = "score"
	AttrRent        = "rent"
	AttrRoomTypes   = "room-types"
	AttrHostelType  = "hostel-type"
	AttrAmenities   = "amenities"
	AttrAddress     = "address"
	AttrContact     = "contact"
	AttrSafety      = "safety"
	AttrRating      = "rating"
	AttrCleanliness = "cleanliness"
	AttrDistance    = "distance"
	AttrColleges    = "colleges"
)

// Record is one hostel as described by its card. Numeric fields keep the raw
// attribute text alongside the parsed value so rendering shows exactly what
// the server wrote.
type Record struct {
	ID          string
	Name        string
	Score       float64
	ScoreText   string
	Rent        Number
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

// HasRoomType reports whether the card offers roomType.
func (r Record) HasRoomType(roomType string) bool {
	for _, rt := range r.RoomTypes {
		if rt == roomType {
			return true
		}
	}
	return false
}

// Attributes is the raw data-* view of a card.
type Attributes interface {
	Attr(name string) (string, bool)
}

// Parse builds a Record from the card attributes. Malformed numbers never
// fail: an unreadable score counts as 0 and an unreadable rent is left
// unknown.
func Parse(attrs Attributes) Record {
	get := func(key string) string {
		if attrs == nil {
			return ""
		}
		v, _ := attrs.Attr("data-" + key)
		return strings.TrimSpace(v)
	}

	rec := Record{
		ID:          get(AttrID),
		Name:        get(AttrName),
		ScoreText:   get(AttrScore),
		RoomTypes:   SplitList(get(AttrRoomTypes)),
		HostelType:  get(AttrHostelType),
		Amenities:   SplitList(get(AttrAmenities)),
		Address:     get(AttrAddress),
		Contact:     get(AttrContact),
		Safety:      get(AttrSafety),
		Rating:      get(AttrRating),
		Cleanliness: get(AttrCleanliness),
		Distance:    get(AttrDistance),
		Colleges:    SplitList(get(AttrColleges)),
	}
	if score, ok := ParseFloat(rec.ScoreText); ok {
		rec.Score = score
	}
	rec.Rent = ParseNumber(get(AttrRent))
	return rec
}

// SplitList splits a comma-joined attribute, trimming entries and dropping
// empty ones.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Card pairs a rendered card element with its parsed record.
type Card struct {
	Node   dom.Node
	Record Record
}

// Query returns every card carrying class, in document order.
func Query(doc dom.Document, class string) []Card {
	if doc == nil {
		return nil
	}
	if class == "" {
		class = DefaultClass
	}
	nodes := doc.QueryClass(class)
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Card, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, Card{Node: node, Record: Parse(node)})
	}
	return out
}

// Find returns the card whose data-id equals id.
func Find(doc dom.Document, class, id string) (Card, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Card{}, false
	}
	for _, c := range Query(doc, class) {
		if c.Record.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
