package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-hostelui/pkg/card"
)

// FieldState is the outcome of one rule.
type FieldState struct {
	FieldID string
	Kind    Kind
	Value   string
	Valid   bool
	Message string
	Err     error
}

// Report collects the field states of a validation pass in rule order.
type Report struct {
	Fields []FieldState
}

// Valid reports whether every rule passed.
func (r Report) Valid() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the failing fields.
func (r Report) Invalid() []FieldState {
	var out []FieldState
	for _, f := range r.Fields {
		if !f.Valid {
			out = append(out, f)
		}
	}
	return out
}

// Field returns the state recorded for id.
func (r Report) Field(id string) (FieldState, bool) {
	for _, f := range r.Fields {
		if f.FieldID == id {
			return f, true
		}
	}
	return FieldState{}, false
}

// Validate evaluates every rule against src. All rules run even after one
// fails so each control receives its own feedback.
func Validate(src Source, rules []Rule) Report {
	report := Report{Fields: make([]FieldState, 0, len(rules))}
	for _, rule := range rules {
		report.Fields = append(report.Fields, evaluate(src, rule))
	}
	return report
}

func evaluate(src Source, rule Rule) FieldState {
	state := FieldState{FieldID: rule.Target, Kind: rule.Kind, Valid: true}

	fail := func(err error, message string) FieldState {
		state.Valid = false
		state.Err = fmt.Errorf("%s: %w", rule.Target, err)
		state.Message = message
		return state
	}

	if src == nil {
		return fail(ErrMissingRequired, rule.Message)
	}

	switch rule.Kind {
	case KindSelect:
		value, _ := src.Value(rule.Target)
		state.Value = value
		if strings.TrimSpace(value) == "" {
			return fail(ErrMissingRequired, rule.Message)
		}
	case KindRadio, KindCheckbox:
		checked := src.Checked(rule.Target)
		state.Value = strings.Join(checked, ",")
		if len(checked) == 0 {
			return fail(ErrMissingRequired, rule.Message)
		}
	case KindMin:
		value, _ := src.Value(rule.Target)
		state.Value = value
		if strings.TrimSpace(value) == "" {
			return fail(ErrMissingRequired, rule.Message)
		}
		n, ok := card.ParseFloat(value)
		if !ok || n < rule.Min {
			message := rule.RangeMessage
			if message == "" {
				message = rule.Message
			}
			return fail(ErrOutOfRange, message)
		}
	default:
		return fail(fmt.Errorf("unknown rule kind %q", rule.Kind), rule.Message)
	}
	return state
}

// Messages returns the trimmed, de-duplicated messages of the failing
// fields, preserving order.
func (r Report) Messages() []string {
	messages := make([]string, 0, len(r.Fields))
	for _, f := range r.Invalid() {
		messages = append(messages, f.Message)
	}
	return normalizeMessages(messages)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
