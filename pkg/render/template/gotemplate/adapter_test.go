package gotemplate

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	files := fstest.MapFS{
		"panels/greeting.tpl": {Data: []byte(`<p class="{{ tone }}">Hello {{ name }}{% if site %} from {{ site }}{% endif %}</p>`)},
	}
	engine, err := New(append([]Option{WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateEscapes(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	out, err := engine.RenderTemplate("panels/greeting", map[string]any{
		"name": `<b>Asha</b> & "co"`,
		"tone": "text-info",
	}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="text-info">Hello &lt;b&gt;Asha&lt;/b&gt; &amp; &quot;co&quot;</p>`
	if out != want {
		t.Fatalf("render = %q, want %q", out, want)
	}
	if buf.String() != out {
		t.Fatalf("writer received %q", buf.String())
	}
}

func TestEngine_StructDataUsesJSONTags(t *testing.T) {
	engine := newTestEngine(t)

	type view struct {
		Name string `json:"name"`
		Tone string `json:"tone"`
	}
	out, err := engine.Render("panels/greeting.tpl", view{Name: "Meera", Tone: "lead"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<p class="lead">Hello Meera</p>` {
		t.Fatalf("render = %q", out)
	}
}

func TestEngine_GlobalsAndInlineTemplates(t *testing.T) {
	engine := newTestEngine(t, WithGlobalData(map[string]any{" site ": "Campus"}))

	out, err := engine.RenderTemplate("panels/greeting", map[string]any{"name": "Ria"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Hello Ria from Campus") {
		t.Fatalf("globals missing: %q", out)
	}

	err = engine.RegisterFilter("hostelui_shout", func(in any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(in)) + "!", nil
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("register filter: %v", err)
	}
	out, err = engine.Render(`{{ value|hostelui_shout }}`, map[string]any{"value": "quiet <b>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "QUIET &lt;B&gt;!" {
		t.Fatalf("inline render = %q", out)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without a filesystem")
	}

	engine := newTestEngine(t)
	if _, err := engine.RenderTemplate("panels/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}
	if err := engine.RegisterFilter("upper", func(in any, _ any) (any, error) { return in, nil }); err == nil {
		t.Fatalf("expected error for a built-in filter name")
	}

	var nilEngine *Engine
	if _, err := nilEngine.RenderString("x", nil); err == nil {
		t.Fatalf("expected nil engine error")
	}
}
