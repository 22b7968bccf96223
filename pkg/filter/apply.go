package filter

import (
	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Controls names the filter form and its inputs.
type Controls struct {
	FormID       string `yaml:"form_id" json:"formId"`
	MinScoreID   string `yaml:"min_score_id" json:"minScoreId"`
	MaxRentID    string `yaml:"max_rent_id" json:"maxRentId"`
	RoomTypeID   string `yaml:"room_type_id" json:"roomTypeId"`
	HostelTypeID string `yaml:"hostel_type_id" json:"hostelTypeId"`
}

// DefaultControls matches the recommendations page markup.
func DefaultControls() Controls {
	return Controls{
		FormID:       "filter-form",
		MinScoreID:   "min-score",
		MaxRentID:    "max-rent",
		RoomTypeID:   "filter-room-type",
		HostelTypeID: "filter-hostel-type",
	}
}

// Config wires the filter to a page.
type Config struct {
	Controls     Controls       `yaml:",inline" json:"controls"`
	CardClass    string         `yaml:"card_class" json:"cardClass"`
	EmptyStateID string         `yaml:"empty_state_id" json:"emptyStateId"`
	Visibility   dom.Visibility `yaml:"visibility" json:"visibility"`
}

// DefaultConfig matches the recommendations page markup.
func DefaultConfig() Config {
	return Config{
		Controls:     DefaultControls(),
		CardClass:    card.DefaultClass,
		EmptyStateID: "empty-results",
		Visibility:   dom.Visibility{Mode: dom.VisibilityStyle},
	}
}

// ReadCriteria reads the controls. Missing or malformed inputs fall back to
// the permissive defaults: score 0, unbounded rent, any type. A max rent of
// 0 is also treated as unbounded since the control uses 0 for "no limit".
func ReadCriteria(doc dom.Document, controls Controls) Criteria {
	c := Unbounded()

	if raw, ok := dom.ControlValue(doc, controls.MinScoreID); ok {
		if v, ok := card.ParseInt(raw); ok {
			c.MinScore = float64(v)
		}
	}
	if raw, ok := dom.ControlValue(doc, controls.MaxRentID); ok {
		if v, ok := card.ParseInt(raw); ok && v != 0 {
			c = c.WithMaxRent(float64(v))
		}
	}
	if raw, ok := dom.ControlValue(doc, controls.RoomTypeID); ok && !isAny(raw) {
		c.RoomType = raw
	}
	if raw, ok := dom.ControlValue(doc, controls.HostelTypeID); ok && !isAny(raw) {
		c.HostelType = raw
	}
	return c
}

// Result is the outcome of one filtering pass.
type Result struct {
	Visible    []string
	Hidden     []string
	AnyVisible bool
}

// Evaluate computes visibility for cards without touching the document.
func Evaluate(c Criteria, cards []card.Card) Result {
	var res Result
	for _, cd := range cards {
		if Match(c, cd.Record) {
			res.Visible = append(res.Visible, cd.Record.ID)
		} else {
			res.Hidden = append(res.Hidden, cd.Record.ID)
		}
	}
	res.AnyVisible = len(res.Visible) > 0
	return res
}

// Apply shows exactly the cards matching c, hides the rest, and shows the
// empty-state banner only when nothing is visible. Re-applying the same
// criteria leaves the document unchanged.
func Apply(doc dom.Document, cfg Config, c Criteria) Result {
	cards := card.Query(doc, cfg.CardClass)
	res := Evaluate(c, cards)
	for _, cd := range cards {
		cfg.Visibility.Apply(cd.Node, Match(c, cd.Record))
	}
	if doc != nil {
		cfg.Visibility.Apply(doc.ByID(cfg.EmptyStateID), !res.AnyVisible)
	}
	return res
}

// Refresh reads the current criteria from the page and applies them.
func Refresh(doc dom.Document, cfg Config) Result {
	return Apply(doc, cfg, ReadCriteria(doc, cfg.Controls))
}

// Bind re-filters whenever a filter control changes or the filter form is
// submitted. Submission never navigates.
func Bind(doc dom.Document, cfg Config, observe func(Result)) bool {
	if doc == nil {
		return false
	}
	form := doc.ByID(cfg.Controls.FormID)
	if form == nil {
		return false
	}
	run := func() {
		res := Refresh(doc, cfg)
		if observe != nil {
			observe(res)
		}
	}
	form.On("submit", func(evt dom.Event) {
		evt.PreventDefault()
		run()
	})
	form.On("change", func(dom.Event) {
		run()
	})
	return true
}
