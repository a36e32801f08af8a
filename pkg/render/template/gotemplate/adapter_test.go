package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formflow/pkg/render/template/gotemplate"
)

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected an error without a base dir or fs.FS")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"chrome.tpl": &fstest.MapFile{Data: []byte("<main>{{ body }}</main>")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Extension is appended when missing.
	out, err := engine.RenderTemplate("chrome", map[string]any{"body": "content"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<main>content</main>" {
		t.Fatalf("out = %q", out)
	}
}

func TestRender_Dispatch(t *testing.T) {
	fsys := fstest.MapFS{
		"page.tpl": &fstest.MapFile{Data: []byte("from file")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	inline, err := engine.Render("inline {{ x }}", map[string]any{"x": "value"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline value" {
		t.Fatalf("inline = %q", inline)
	}

	named, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "from file" {
		t.Fatalf("named = %q", named)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{}),
		gotemplate.WithGlobalData(map[string]any{"app": "formflow"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderString("{{ app }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "formflow" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderString_Tee(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var sink strings.Builder
	out, err := engine.RenderString("copied", nil, &sink)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "copied" || sink.String() != "copied" {
		t.Fatalf("out = %q, sink = %q", out, sink.String())
	}
}

func TestStructContext(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	payload := struct {
		Title string `json:"title"`
	}{Title: "Feedback"}

	out, err := engine.RenderString("{{ title }}", payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Feedback" {
		t.Fatalf("out = %q", out)
	}
}
