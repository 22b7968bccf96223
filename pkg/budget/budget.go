// Package budget mirrors the budget range slider into its display element.
package budget

import (
	"github.com/goliatone/go-hostelui/pkg/dom"
)

// DefaultSymbol is the currency symbol prefixed to the slider value.
const DefaultSymbol = "₹"

// Binder ties one slider to one display element.
type Binder struct {
	SliderID  string `yaml:"slider_id" json:"sliderId"`
	DisplayID string `yaml:"display_id" json:"displayId"`
	Symbol    string `yaml:"symbol,omitempty" json:"symbol,omitempty"`
}

// Format renders value the way the display shows it. The value is copied
// verbatim: no rounding, grouping or unit conversion.
func (b Binder) Format(value string) string {
	return b.symbol() + value
}

// Sync copies the slider value into the display. It reports false when
// either element is missing.
func (b Binder) Sync(doc dom.Document) bool {
	if doc == nil {
		return false
	}
	slider := doc.ByID(b.SliderID)
	display := doc.ByID(b.DisplayID)
	if slider == nil || display == nil {
		return false
	}
	display.SetText(b.Format(slider.Value()))
	return true
}

// Bind shows the initial slider value and keeps the display in step with
// every input event.
func (b Binder) Bind(doc dom.Document) bool {
	if !b.Sync(doc) {
		return false
	}
	doc.ByID(b.SliderID).On("input", func(dom.Event) {
		b.Sync(doc)
	})
	return true
}

func (b Binder) symbol() string {
	if b.Symbol == "" {
		return DefaultSymbol
	}
	return b.Symbol
}
