package validation

import (
	"errors"
	"fmt"
)

// Kind selects how a rule inspects its target.
type Kind string

const (
	// KindSelect requires a non-empty value on the control with id Target.
	KindSelect Kind = "select"
	// KindRadio requires one checked radio in the group named Target.
	KindRadio Kind = "radio"
	// KindCheckbox requires at least one checked box in the group named Target.
	KindCheckbox Kind = "checkbox"
	// KindMin requires a numeric value on control Target that is at least Min.
	KindMin Kind = "min"
)

var (
	// ErrMissingRequired marks a required field left empty.
	ErrMissingRequired = errors.New("validation: required field missing")
	// ErrOutOfRange marks a numeric field below its floor.
	ErrOutOfRange = errors.New("validation: value out of range")
)

// Rule is one entry of the required-field checklist.
type Rule struct {
	Kind Kind `yaml:"kind" json:"kind"`
	// Target is a control id for select/min rules and a group name for
	// radio/checkbox rules.
	Target string `yaml:"target" json:"target"`
	// FeedbackID names the element that receives the inline message. When
	// empty, select/min rules fall back to Target + "-feedback".
	FeedbackID   string  `yaml:"feedback_id,omitempty" json:"feedbackId,omitempty"`
	Message      string  `yaml:"message" json:"message"`
	Min          float64 `yaml:"min,omitempty" json:"min,omitempty"`
	RangeMessage string  `yaml:"range_message,omitempty" json:"rangeMessage,omitempty"`
}

// Check validates the rule definition itself.
func (r Rule) Check() error {
	switch r.Kind {
	case KindSelect, KindRadio, KindCheckbox, KindMin:
	default:
		return fmt.Errorf("validation: unknown rule kind %q", r.Kind)
	}
	if r.Target == "" {
		return fmt.Errorf("validation: %s rule requires a target", r.Kind)
	}
	return nil
}

// Feedback returns the id of the element receiving this rule's message.
func (r Rule) Feedback() string {
	if r.FeedbackID != "" {
		return r.FeedbackID
	}
	return r.Target + "-feedback"
}

// DefaultRules is the preference-form checklist: college, room type, hostel
// type and at least one amenity.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: KindSelect, Target: "college", FeedbackID: "college-feedback", Message: "Please select your college"},
		{Kind: KindRadio, Target: "room_type", FeedbackID: "room-type-feedback", Message: "Please select a room type"},
		{Kind: KindRadio, Target: "hostel_type", FeedbackID: "hostel-type-feedback", Message: "Please select a hostel type"},
		{Kind: KindCheckbox, Target: "amenities", FeedbackID: "amenities-feedback", Message: "Please select at least one amenity"},
	}
}

// BudgetRule is the optional monthly budget floor.
func BudgetRule(id string, floor float64) Rule {
	return Rule{
		Kind:         KindMin,
		Target:       id,
		FeedbackID:   id + "-feedback",
		Message:      "Please set your monthly budget",
		Min:          floor,
		RangeMessage: fmt.Sprintf("Budget must be at least ₹%s", formatAmount(floor)),
	}
}
