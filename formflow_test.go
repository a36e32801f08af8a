package formflow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	formflow "github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/pkg/descriptor"
)

const sampleDescriptor = `{
  "formId": "signup",
  "formTitle": "Sign up",
  "sections": [
    {
      "sectionId": "account",
      "fields": [
        {"fieldId": "email", "type": "email", "label": "Email", "required": true},
        {"fieldId": "terms", "type": "boolean-checkbox", "label": "Terms", "required": true}
      ]
    }
  ]
}`

func TestLoadFormAndNewEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.json")
	if err := os.WriteFile(path, []byte(sampleDescriptor), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	form, err := formflow.LoadForm(context.Background(), descriptor.SourceFromFile(path), descriptor.LoaderOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if form.ID != "signup" {
		t.Fatalf("formId = %q", form.ID)
	}

	eng, err := formflow.NewEngine(form)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	if err := eng.UpdateField("email", "ada@example.com"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := eng.UpdateField("terms", true); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !eng.Submit(context.Background()) {
		t.Fatalf("submit failed: %v", eng.ValidationErrors())
	}
}
