// Package htmldoc implements dom.Document over markup parsed with
// golang.org/x/net/html. It backs the CLI and the package tests: pages
// rendered by the server can be loaded, driven through the same handlers the
// browser runs, and serialised again.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Document is a parsed page plus the listeners registered against it.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]dom.Listener
	validity  map[*html.Node]string
	presented []*html.Node
	tooltips  map[*html.Node]bool
}

var _ dom.Document = (*Document)(nil)
var _ dom.Presenter = (*Document)(nil)
var _ dom.TooltipActivator = (*Document)(nil)

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]dom.Listener),
		validity:  make(map[*html.Node]string),
	}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// MustParseString panics on malformed input. Intended for fixtures.
func MustParseString(markup string) *Document {
	doc, err := ParseString(markup)
	if err != nil {
		panic(err)
	}
	return doc
}

// Render serialises the current tree.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the serialised tree, or an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// ByID implements dom.Document.
func (d *Document) ByID(id string) dom.Node {
	if id == "" {
		return nil
	}
	found := findFirst(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if found == nil {
		return nil
	}
	return d.wrap(found)
}

// QueryClass implements dom.Document.
func (d *Document) QueryClass(class string) []dom.Node {
	return d.wrapAll(findAll(d.root, hasClassFn(class)))
}

// QueryName implements dom.Document.
func (d *Document) QueryName(name string) []dom.Node {
	return d.wrapAll(findAll(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "name")
		return ok && v == name
	}))
}

// Body returns the body element, if any.
func (d *Document) Body() dom.Node {
	found := findFirst(d.root, func(n *html.Node) bool { return n.Data == "body" })
	if found == nil {
		return nil
	}
	return d.wrap(found)
}

// Present marks node as an open overlay.
func (d *Document) Present(node dom.Node) {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return
	}
	n.ToggleClass("show", true)
	n.SetStyle("display", "block")
	n.SetAttr("aria-hidden", "false")
	d.presented = append(d.presented, n.n)
}

// Presented reports whether node was opened through Present.
func (d *Document) Presented(node dom.Node) bool {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return false
	}
	for _, p := range d.presented {
		if p == n.n {
			return true
		}
	}
	return false
}

// ActivateTooltips marks every data-bs-toggle="tooltip" element as having a
// tooltip. Activating twice leaves the set unchanged.
func (d *Document) ActivateTooltips() int {
	triggers := findAll(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "data-bs-toggle")
		return ok && v == dom.TooltipToggle
	})
	if len(triggers) == 0 {
		return 0
	}
	if d.tooltips == nil {
		d.tooltips = make(map[*html.Node]bool, len(triggers))
	}
	for _, n := range triggers {
		d.tooltips[n] = true
	}
	return len(triggers)
}

// HasTooltip reports whether node was activated by ActivateTooltips.
func (d *Document) HasTooltip(node dom.Node) bool {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return false
	}
	return d.tooltips[n.n]
}

// ValidityMessage returns the last custom validity message set on node.
func (d *Document) ValidityMessage(node dom.Node) string {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return ""
	}
	return d.validity[n.n]
}

// Dispatch fires eventType at target and bubbles it through the ancestors,
// running listeners synchronously. The returned event reports whether any
// listener cancelled the default action.
func (d *Document) Dispatch(target dom.Node, eventType string) *Event {
	evt := &Event{kind: eventType, target: target}
	n, ok := target.(*Node)
	if !ok || n == nil {
		return evt
	}
	for cur := n.n; cur != nil && !evt.stopped; cur = cur.Parent {
		for _, fn := range d.listeners[cur][eventType] {
			fn(evt)
		}
	}
	return evt
}

// DispatchID is Dispatch addressed by element id. Missing targets yield an
// event no listener saw.
func (d *Document) DispatchID(id, eventType string) *Event {
	node := d.ByID(id)
	if node == nil {
		return &Event{kind: eventType}
	}
	return d.Dispatch(node, eventType)
}

func (d *Document) wrap(n *html.Node) *Node {
	return &Node{doc: d, n: n}
}

func (d *Document) wrapAll(nodes []*html.Node) []dom.Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]dom.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

func (d *Document) addListener(n *html.Node, event string, fn dom.Listener) {
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]dom.Listener)
		d.listeners[n] = byType
	}
	byType[event] = append(byType[event], fn)
}

// Event is the htmldoc dom.Event.
type Event struct {
	kind      string
	target    dom.Node
	prevented bool
	stopped   bool
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string           { return e.kind }
func (e *Event) Target() dom.Node       { return e.target }
func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }
func (e *Event) StopPropagation()       { e.stopped = true }

// Stopped reports whether a listener stopped propagation.
func (e *Event) Stopped() bool { return e.stopped }
