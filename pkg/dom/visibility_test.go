package dom_test

import (
	"testing"

	"github.com/goliatone/go-hostelui/pkg/dom"
	"github.com/goliatone/go-hostelui/pkg/dom/htmldoc"
)

func TestVisibility_Modes(t *testing.T) {
	doc := htmldoc.MustParseString(`<div id="a"></div>`)
	node := doc.ByID("a")

	styled := dom.Visibility{Mode: dom.VisibilityStyle}
	styled.Apply(node, false)
	if styled.Visible(node) {
		t.Fatalf("style mode: expected hidden")
	}
	styled.Apply(node, true)
	if got := node.Style("display"); got != "block" {
		t.Fatalf("style mode: want display block, got %q", got)
	}

	classed := dom.Visibility{Mode: dom.VisibilityClass}
	classed.Apply(node, false)
	if !node.HasClass(dom.DefaultHiddenClass) || classed.Visible(node) {
		t.Fatalf("class mode: expected %s", dom.DefaultHiddenClass)
	}
	classed.Apply(node, true)
	if node.HasClass(dom.DefaultHiddenClass) {
		t.Fatalf("class mode: expected class removed")
	}

	// Missing elements are ignored.
	classed.Apply(doc.ByID("missing"), true)
}

func TestParseVisibilityMode(t *testing.T) {
	if mode, err := dom.ParseVisibilityMode(""); err != nil || mode != dom.VisibilityStyle {
		t.Fatalf("empty mode: got %q, %v", mode, err)
	}
	if _, err := dom.ParseVisibilityMode("opacity"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
