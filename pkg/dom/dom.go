package dom

// Listener handles a dispatched event.
type Listener func(Event)

// Event mirrors the subset of the DOM Event interface the components rely on.
type Event interface {
	Type() string
	Target() Node
	PreventDefault()
	DefaultPrevented() bool
	StopPropagation()
}

// Node is a single element. Implementations must treat every mutation as
// in-place: there is no staging and no rollback.
type Node interface {
	ID() string
	Tag() string

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	Value() string
	SetValue(value string)
	Checked() bool
	SetChecked(checked bool)

	Text() string
	SetText(text string)
	// SetHTML replaces the element children with the parsed markup. Callers
	// are responsible for escaping interpolated text before calling it.
	SetHTML(markup string) error

	HasClass(class string) bool
	ToggleClass(class string, on bool)
	Style(property string) string
	SetStyle(property, value string)

	SetCustomValidity(message string)

	QueryClass(class string) []Node
	On(event string, fn Listener)
}

// Document is the page. ByID returns nil when the element is absent.
type Document interface {
	ByID(id string) Node
	QueryClass(class string) []Node
	QueryName(name string) []Node
}

// Presenter is implemented by documents that know how to open an overlay
// (for example a bootstrap modal). Documents without it get the fallback in
// Present.
type Presenter interface {
	Present(node Node)
}

// Present opens an overlay element, delegating to the document when it
// implements Presenter.
func Present(doc Document, node Node) {
	if node == nil {
		return
	}
	if p, ok := doc.(Presenter); ok {
		p.Present(node)
		return
	}
	node.ToggleClass("show", true)
	node.SetStyle("display", "block")
	node.SetAttr("aria-hidden", "false")
}

// TooltipToggle is the value of data-bs-toggle that marks a tooltip trigger.
const TooltipToggle = "tooltip"

// TooltipActivator is implemented by documents that can attach tooltips to
// the elements carrying data-bs-toggle="tooltip".
type TooltipActivator interface {
	ActivateTooltips() int
}

// ActivateTooltips enables tooltips on doc and returns how many triggers were
// activated. Documents without tooltip support activate none.
func ActivateTooltips(doc Document) int {
	if a, ok := doc.(TooltipActivator); ok {
		return a.ActivateTooltips()
	}
	return 0
}
