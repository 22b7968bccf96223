package validation

import (
	"net/url"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Source exposes form state to the validator.
type Source interface {
	// Value returns the value of the control with id, and whether it exists.
	Value(id string) (string, bool)
	// Checked returns the values of the checked controls in group name.
	Checked(name string) []string
}

// FromDocument reads controls out of a live document.
func FromDocument(doc dom.Document) Source {
	return documentSource{doc: doc}
}

type documentSource struct {
	doc dom.Document
}

func (s documentSource) Value(id string) (string, bool) { return dom.ControlValue(s.doc, id) }
func (s documentSource) Checked(name string) []string   { return dom.CheckedValues(s.doc, name) }

// FromValues reads a posted form. Select and min rules look the control up by
// field name, which the preference form keeps equal to the control id.
func FromValues(values url.Values) Source {
	return valuesSource(values)
}

type valuesSource url.Values

func (s valuesSource) Value(id string) (string, bool) {
	vals, ok := s[id]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func (s valuesSource) Checked(name string) []string {
	var out []string
	for _, v := range s[name] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
