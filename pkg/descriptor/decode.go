package descriptor

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a descriptor payload and validates its shape. JSON is tried
// first; YAML is accepted as a fallback so descriptors can be authored either
// way.
func Parse(data []byte) (Form, error) {
	if len(data) == 0 {
		return Form{}, fmt.Errorf("descriptor: payload is empty")
	}

	var form Form
	if err := json.Unmarshal(data, &form); err != nil {
		if yamlErr := yaml.Unmarshal(data, &form); yamlErr != nil {
			return Form{}, fmt.Errorf("descriptor: decode payload: %w", err)
		}
	}

	if err := form.Validate(); err != nil {
		return Form{}, err
	}
	return form, nil
}
