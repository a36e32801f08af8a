package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formflow/pkg/descriptor"
)

// FormFromOperation derives a form descriptor from an OpenAPI operation's
// request body. When every top-level property of the body schema is itself an
// object, each nested object becomes a section; otherwise the whole body maps
// to a single section. Properties that cannot be expressed in the closed
// field-type set (arrays, deeply nested objects, numerics without an enum)
// are skipped.
func FormFromOperation(ctx context.Context, document []byte, operationID string) (descriptor.Form, error) {
	if err := ctx.Err(); err != nil {
		return descriptor.Form{}, err
	}
	if len(document) == 0 {
		return descriptor.Form{}, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return descriptor.Form{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(document)
	if err != nil {
		return descriptor.Form{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return descriptor.Form{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestBodySchema(operation)
	if body == nil {
		return descriptor.Form{}, fmt.Errorf("openapi: operation %q has no object request body", operationID)
	}

	form := descriptor.Form{
		Title:   formTitle(spec, operation, operationID),
		ID:      operationID,
		Version: specVersion(spec),
	}

	if nested := nestedObjectSections(body); len(nested) > 0 {
		form.Sections = nested
	} else {
		section := sectionFromSchema("details", form.Title, body)
		if len(section.Fields) == 0 {
			return descriptor.Form{}, fmt.Errorf("openapi: operation %q yields no supported fields", operationID)
		}
		form.Sections = []descriptor.Section{section}
	}

	if err := form.Validate(); err != nil {
		return descriptor.Form{}, fmt.Errorf("openapi: %w", err)
	}
	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Post, item.Put, item.Patch, item.Get, item.Delete,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			if isObject(mt.Schema.Value) {
				return mt.Schema.Value
			}
		}
	}
	return nil
}

// nestedObjectSections maps one section per top-level object property when
// the body schema is entirely composed of them. Property names are sorted for
// deterministic ordering; OpenAPI objects carry no declared order.
func nestedObjectSections(body *openapi3.Schema) []descriptor.Section {
	if len(body.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(body.Properties))
	for name, ref := range body.Properties {
		if ref == nil || ref.Value == nil || !isObject(ref.Value) || len(ref.Value.Properties) == 0 {
			return nil
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]descriptor.Section, 0, len(names))
	for _, name := range names {
		child := body.Properties[name].Value
		section := sectionFromSchema(name, sectionTitle(name, child), child)
		if len(section.Fields) == 0 {
			continue
		}
		sections = append(sections, section)
	}
	return sections
}

func sectionFromSchema(id, title string, schema *openapi3.Schema) descriptor.Section {
	section := descriptor.Section{
		ID:          id,
		Title:       title,
		Description: schema.Description,
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromSchema(name, ref.Value, required[name])
		if !ok {
			continue
		}
		section.Fields = append(section.Fields, field)
	}
	return section
}

func fieldFromSchema(name string, schema *openapi3.Schema, required bool) (descriptor.Field, bool) {
	field := descriptor.Field{
		ID:       name,
		Label:    fieldLabel(name, schema),
		Required: required,
	}

	switch {
	case isType(schema, "boolean"):
		field.Type = descriptor.FieldTypeCheckbox
	case len(schema.Enum) > 0:
		field.Type = descriptor.FieldTypeSelect
		for _, raw := range schema.Enum {
			value := fmt.Sprint(raw)
			field.Options = append(field.Options, descriptor.Option{Value: value, Label: value})
		}
	case isType(schema, "string"):
		field.Type = stringFieldType(schema)
		if schema.MinLength > 0 {
			min := int(schema.MinLength)
			field.MinLength = &min
		}
		if schema.MaxLength != nil {
			max := int(*schema.MaxLength)
			field.MaxLength = &max
		}
	default:
		return descriptor.Field{}, false
	}

	if schema.Description != "" && len(schema.Description) <= 80 {
		field.Placeholder = schema.Description
	}
	return field, true
}

func stringFieldType(schema *openapi3.Schema) descriptor.FieldType {
	switch schema.Format {
	case "email":
		return descriptor.FieldTypeEmail
	case "date":
		return descriptor.FieldTypeDate
	case "phone", "tel":
		return descriptor.FieldTypePhone
	case "textarea":
		return descriptor.FieldTypeLongText
	}
	if schema.MaxLength != nil && *schema.MaxLength >= 256 {
		return descriptor.FieldTypeLongText
	}
	return descriptor.FieldTypeShortText
}

func isObject(schema *openapi3.Schema) bool {
	return isType(schema, "object") || (schema.Type == nil && len(schema.Properties) > 0)
}

func isType(schema *openapi3.Schema, want string) bool {
	if schema.Type == nil {
		return false
	}
	for _, value := range schema.Type.Slice() {
		if value == want {
			return true
		}
	}
	return false
}

func fieldLabel(name string, schema *openapi3.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	return humanize(name)
}

func sectionTitle(name string, schema *openapi3.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	return humanize(name)
}

func humanize(name string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	if cleaned == "" {
		return name
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

func formTitle(spec *openapi3.T, operation *openapi3.Operation, operationID string) string {
	if operation.Summary != "" {
		return operation.Summary
	}
	if spec.Info != nil && spec.Info.Title != "" {
		return spec.Info.Title
	}
	return operationID
}

func specVersion(spec *openapi3.T) string {
	if spec.Info != nil {
		return spec.Info.Version
	}
	return ""
}
