package htmldoc

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Node wraps a single element of a parsed Document.
type Node struct {
	doc *Document
	n   *html.Node
}

var _ dom.Node = (*Node)(nil)

func (n *Node) ID() string {
	v, _ := attr(n.n, "id")
	return v
}

func (n *Node) Tag() string { return n.n.Data }

func (n *Node) Attr(name string) (string, bool) { return attr(n.n, name) }

func (n *Node) SetAttr(name, value string) { setAttr(n.n, name, value) }

func (n *Node) RemoveAttr(name string) { removeAttr(n.n, name) }

// Value follows the browser rules for the controls the pages use: inputs read
// their value attribute, textareas their text, and selects the selected
// option (or the first one when none is marked).
func (n *Node) Value() string {
	switch n.n.Data {
	case "select":
		options := findAll(n.n, func(c *html.Node) bool { return c.Data == "option" })
		if len(options) == 0 {
			return ""
		}
		chosen := options[0]
		for _, opt := range options {
			if _, ok := attr(opt, "selected"); ok {
				chosen = opt
				break
			}
		}
		return optionValue(chosen)
	case "textarea":
		return textContent(n.n)
	case "option":
		return optionValue(n.n)
	default:
		v, _ := attr(n.n, "value")
		return v
	}
}

func (n *Node) SetValue(value string) {
	switch n.n.Data {
	case "select":
		for _, opt := range findAll(n.n, func(c *html.Node) bool { return c.Data == "option" }) {
			if optionValue(opt) == value {
				setAttr(opt, "selected", "")
			} else {
				removeAttr(opt, "selected")
			}
		}
	case "textarea":
		replaceChildren(n.n, &html.Node{Type: html.TextNode, Data: value})
	default:
		setAttr(n.n, "value", value)
	}
}

func (n *Node) Checked() bool {
	_, ok := attr(n.n, "checked")
	return ok
}

// SetChecked also unchecks the other radios of the same group, as a browser
// would.
func (n *Node) SetChecked(checked bool) {
	if !checked {
		removeAttr(n.n, "checked")
		return
	}
	if kind, _ := attr(n.n, "type"); strings.EqualFold(kind, "radio") {
		if name, ok := attr(n.n, "name"); ok {
			for _, peer := range n.doc.QueryName(name) {
				if p, ok := peer.(*Node); ok && p.n != n.n {
					removeAttr(p.n, "checked")
				}
			}
		}
	}
	setAttr(n.n, "checked", "")
}

func (n *Node) Text() string { return textContent(n.n) }

func (n *Node) SetText(text string) {
	if text == "" {
		replaceChildren(n.n)
		return
	}
	replaceChildren(n.n, &html.Node{Type: html.TextNode, Data: text})
}

func (n *Node) SetHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n.n)
	if err != nil {
		return err
	}
	replaceChildren(n.n, nodes...)
	return nil
}

func (n *Node) HasClass(class string) bool { return hasClassFn(class)(n.n) }

func (n *Node) ToggleClass(class string, on bool) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	raw, _ := attr(n.n, "class")
	tokens := dom.SplitClasses(raw)
	out := tokens[:0]
	present := false
	for _, tok := range tokens {
		if tok == class {
			present = true
			if !on {
				continue
			}
		}
		out = append(out, tok)
	}
	if on && !present {
		out = append(out, class)
	}
	if len(out) == 0 {
		removeAttr(n.n, "class")
		return
	}
	setAttr(n.n, "class", strings.Join(out, " "))
}

func (n *Node) Style(property string) string {
	raw, _ := attr(n.n, "style")
	for _, decl := range parseStyle(raw) {
		if decl.property == property {
			return decl.value
		}
	}
	return ""
}

func (n *Node) SetStyle(property, value string) {
	raw, _ := attr(n.n, "style")
	decls := parseStyle(raw)
	replaced := false
	for i := range decls {
		if decls[i].property == property {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, styleDecl{property: property, value: value})
	}
	setAttr(n.n, "style", formatStyle(decls))
}

func (n *Node) SetCustomValidity(message string) {
	if message == "" {
		delete(n.doc.validity, n.n)
		return
	}
	n.doc.validity[n.n] = message
}

func (n *Node) QueryClass(class string) []dom.Node {
	var matches []*html.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		matches = append(matches, findAll(c, hasClassFn(class))...)
	}
	return n.doc.wrapAll(matches)
}

func (n *Node) On(event string, fn dom.Listener) {
	if fn == nil {
		return
	}
	n.doc.addListener(n.n, event, fn)
}
