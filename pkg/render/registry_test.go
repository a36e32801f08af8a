package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/descriptor"
	"github.com/goliatone/go-formflow/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, descriptor.Form, render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()

	if err := reg.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "vanilla"}); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatal("empty name should fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("nil renderer should fail")
	}

	if !reg.Has("vanilla") {
		t.Fatal("Has(vanilla) = false")
	}
	if _, err := reg.Get("vanilla"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatal("unknown renderer should not resolve")
	}

	reg.MustRegister(stubRenderer{name: "tui"})
	if diff := cmp.Diff([]string{"tui", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenFields(t *testing.T) {
	merged := render.MergeHiddenFields(
		map[string]string{"_app": "formflow", " ": "dropped"},
		render.CSRFToken("_csrf", "tok-123"),
		render.VersionField("_version", "1.0.0"),
		render.Hidden("", "ignored"),
		render.Hidden("_app", "override"),
	)

	want := []render.HiddenField{
		{Name: "_app", Value: "override"},
		{Name: "_csrf", Value: "tok-123"},
		{Name: "_version", Value: "1.0.0"},
	}
	if diff := cmp.Diff(want, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}

	if got := render.SortedHiddenFields(nil); got != nil {
		t.Fatalf("SortedHiddenFields(nil) = %v, want nil", got)
	}
	if got := render.MergeHiddenFields(nil); got != nil {
		t.Fatalf("MergeHiddenFields(nil) = %v, want nil", got)
	}
}
