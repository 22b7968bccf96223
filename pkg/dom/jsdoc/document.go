//go:build js && wasm

// Package jsdoc implements dom.Document on top of syscall/js so the hostelui
// components can run in the browser as a WebAssembly module.
package jsdoc

import (
	"strings"
	"syscall/js"

	"github.com/goliatone/go-hostelui/pkg/dom"
)

// Document wraps the global window.document.
type Document struct {
	v     js.Value
	funcs []js.Func
}

var _ dom.Document = (*Document)(nil)
var _ dom.Presenter = (*Document)(nil)
var _ dom.TooltipActivator = (*Document)(nil)

// New returns the document of the current window.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

// ByID implements dom.Document.
func (d *Document) ByID(id string) dom.Node {
	if id == "" {
		return nil
	}
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil
	}
	return d.wrap(el)
}

// QueryClass implements dom.Document.
func (d *Document) QueryClass(class string) []dom.Node {
	return d.collect(d.v.Call("getElementsByClassName", class))
}

// QueryName implements dom.Document.
func (d *Document) QueryName(name string) []dom.Node {
	return d.collect(d.v.Call("getElementsByName", name))
}

// Body returns document.body.
func (d *Document) Body() dom.Node {
	body := d.v.Get("body")
	if body.IsNull() || body.IsUndefined() {
		return nil
	}
	return d.wrap(body)
}

// OnReady runs fn once the DOM is parsed, immediately if it already is.
func (d *Document) OnReady(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	cb := d.keep(js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	}))
	d.v.Call("addEventListener", "DOMContentLoaded", cb)
}

// Present opens node through bootstrap.Modal when bootstrap is loaded.
func (d *Document) Present(node dom.Node) {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return
	}
	bs := js.Global().Get("bootstrap")
	if bs.IsUndefined() || bs.IsNull() {
		n.ToggleClass("show", true)
		n.SetStyle("display", "block")
		n.SetAttr("aria-hidden", "false")
		return
	}
	modal := bs.Get("Modal")
	if getter := modal.Get("getOrCreateInstance"); getter.Type() == js.TypeFunction {
		modal.Call("getOrCreateInstance", n.v).Call("show")
		return
	}
	modal.New(n.v).Call("show")
}

// ActivateTooltips creates a bootstrap.Tooltip for every
// [data-bs-toggle="tooltip"] element. Without bootstrap it does nothing.
func (d *Document) ActivateTooltips() int {
	bs := js.Global().Get("bootstrap")
	if bs.IsUndefined() || bs.IsNull() {
		return 0
	}
	tooltip := bs.Get("Tooltip")
	if tooltip.Type() != js.TypeFunction {
		return 0
	}
	list := d.v.Call("querySelectorAll", `[data-bs-toggle="`+dom.TooltipToggle+`"]`)
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		el := list.Index(i)
		if tooltip.Get("getOrCreateInstance").Type() == js.TypeFunction {
			tooltip.Call("getOrCreateInstance", el)
			continue
		}
		tooltip.New(el)
	}
	return length
}

func (d *Document) wrap(v js.Value) *Node {
	return &Node{doc: d, v: v}
}

func (d *Document) collect(list js.Value) []dom.Node {
	length := list.Get("length").Int()
	if length == 0 {
		return nil
	}
	out := make([]dom.Node, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, d.wrap(list.Index(i)))
	}
	return out
}

// keep retains callbacks for the lifetime of the page; listeners are never
// removed.
func (d *Document) keep(fn js.Func) js.Func {
	d.funcs = append(d.funcs, fn)
	return fn
}

// Node wraps an Element.
type Node struct {
	doc *Document
	v   js.Value
}

var _ dom.Node = (*Node)(nil)

func (n *Node) ID() string  { return n.v.Get("id").String() }
func (n *Node) Tag() string { return strings.ToLower(n.v.Get("tagName").String()) }

func (n *Node) Attr(name string) (string, bool) {
	v := n.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (n *Node) SetAttr(name, value string) { n.v.Call("setAttribute", name, value) }
func (n *Node) RemoveAttr(name string)     { n.v.Call("removeAttribute", name) }

func (n *Node) Value() string {
	v := n.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (n *Node) SetValue(value string) { n.v.Set("value", value) }
func (n *Node) Checked() bool         { return n.v.Get("checked").Truthy() }
func (n *Node) SetChecked(checked bool) {
	n.v.Set("checked", checked)
}

func (n *Node) Text() string        { return n.v.Get("textContent").String() }
func (n *Node) SetText(text string) { n.v.Set("textContent", text) }

func (n *Node) SetHTML(markup string) error {
	n.v.Set("innerHTML", markup)
	return nil
}

func (n *Node) HasClass(class string) bool {
	return n.v.Get("classList").Call("contains", class).Bool()
}

func (n *Node) ToggleClass(class string, on bool) {
	if class == "" {
		return
	}
	n.v.Get("classList").Call("toggle", class, on)
}

func (n *Node) Style(property string) string {
	return n.v.Get("style").Call("getPropertyValue", property).String()
}

func (n *Node) SetStyle(property, value string) {
	n.v.Get("style").Call("setProperty", property, value)
}

func (n *Node) SetCustomValidity(message string) {
	if n.v.Get("setCustomValidity").Type() != js.TypeFunction {
		return
	}
	n.v.Call("setCustomValidity", message)
}

func (n *Node) QueryClass(class string) []dom.Node {
	return n.doc.collect(n.v.Call("getElementsByClassName", class))
}

func (n *Node) On(event string, fn dom.Listener) {
	if fn == nil {
		return
	}
	cb := n.doc.keep(js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		fn(&Event{doc: n.doc, v: args[0]})
		return nil
	}))
	n.v.Call("addEventListener", event, cb)
}

// Event wraps a DOM Event.
type Event struct {
	doc *Document
	v   js.Value
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Node {
	target := e.v.Get("target")
	if target.IsNull() || target.IsUndefined() {
		return nil
	}
	return e.doc.wrap(target)
}

func (e *Event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *Event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }
func (e *Event) StopPropagation()       { e.v.Call("stopPropagation") }
