package validation

import (
	"fmt"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Mechanism selects how feedback reaches the user.
type Mechanism string

const (
	// MechanismInline writes the message into a feedback element next to the
	// control and toggles bootstrap's is-invalid/is-valid classes.
	MechanismInline Mechanism = "inline-text"
	// MechanismCustomValidity uses the constraint validation API
	// (setCustomValidity) on the control itself.
	MechanismCustomValidity Mechanism = "custom-validity"
)

// Feedback classes shared with the page stylesheet.
const (
	ClassInvalid         = "is-invalid"
	ClassValid           = "is-valid"
	ClassInvalidFeedback = "invalid-feedback"
	ClassWasValidated    = "was-validated"
)

// ParseMechanism validates a configured mechanism. Empty selects inline text.
func ParseMechanism(raw string) (Mechanism, error) {
	switch Mechanism(raw) {
	case "", MechanismInline:
		return MechanismInline, nil
	case MechanismCustomValidity:
		return MechanismCustomValidity, nil
	default:
		return "", fmt.Errorf("validation: unknown feedback mechanism %q", raw)
	}
}

// Apply writes report onto doc. Passing fields have any previous invalid
// state cleared. Missing elements are skipped.
func Apply(doc dom.Document, rules []Rule, report Report, mechanism Mechanism) {
	if doc == nil {
		return
	}
	for i, rule := range rules {
		if i >= len(report.Fields) {
			return
		}
		state := report.Fields[i]
		switch mechanism {
		case MechanismCustomValidity:
			applyCustomValidity(doc, rule, state)
		default:
			applyInline(doc, rule, state)
		}
	}
}

func applyInline(doc dom.Document, rule Rule, state FieldState) {
	if control := controlFor(doc, rule); control != nil {
		control.ToggleClass(ClassInvalid, !state.Valid)
		control.ToggleClass(ClassValid, state.Valid)
	}
	feedback := doc.ByID(rule.Feedback())
	if feedback == nil {
		return
	}
	if state.Valid {
		feedback.SetText("")
		return
	}
	feedback.ToggleClass(ClassInvalidFeedback, true)
	feedback.SetText(state.Message)
}

func applyCustomValidity(doc dom.Document, rule Rule, state FieldState) {
	message := ""
	if !state.Valid {
		message = state.Message
	}
	for _, control := range controlsFor(doc, rule) {
		control.SetCustomValidity(message)
	}
}

func controlFor(doc dom.Document, rule Rule) dom.Node {
	switch rule.Kind {
	case KindSelect, KindMin:
		return doc.ByID(rule.Target)
	default:
		return nil
	}
}

// controlsFor returns the elements carrying validity for rule. Groups report
// on every member so whichever one the browser focuses shows the message.
func controlsFor(doc dom.Document, rule Rule) []dom.Node {
	switch rule.Kind {
	case KindRadio, KindCheckbox:
		return doc.QueryName(rule.Target)
	default:
		if node := doc.ByID(rule.Target); node != nil {
			return []dom.Node{node}
		}
		return nil
	}
}

// Form validates the form identified by FormID on every submit.
type Form struct {
	FormID    string
	Rules     []Rule
	Mechanism Mechanism
	// OnResult, when set, observes every validation pass.
	OnResult func(Report)
}

// Check validates the document now and writes feedback.
func (f Form) Check(doc dom.Document) Report {
	report := Validate(FromDocument(doc), f.Rules)
	Apply(doc, f.Rules, report, f.Mechanism)
	if doc != nil {
		if form := doc.ByID(f.FormID); form != nil {
			form.ToggleClass(ClassWasValidated, true)
		}
	}
	if f.OnResult != nil {
		f.OnResult(report)
	}
	return report
}

// Submit handles a submit event: an invalid form cancels the submission.
func (f Form) Submit(doc dom.Document, evt dom.Event) Report {
	report := f.Check(doc)
	if !report.Valid() && evt != nil {
		evt.PreventDefault()
		evt.StopPropagation()
	}
	return report
}

// Bind subscribes to the form's submit event. It reports false when the form
// is absent from the page.
func (f Form) Bind(doc dom.Document) bool {
	if doc == nil {
		return false
	}
	form := doc.ByID(f.FormID)
	if form == nil {
		return false
	}
	form.On("submit", func(evt dom.Event) {
		f.Submit(doc, evt)
	})
	return true
}
