// pkg/bundle/bundle.go
package bundle

import (
	"encoding/json"
	"os"

	"bizplan-engine/internal/models"
)

// Bundle is the interchange format for a full template configuration:
// built-in templates under "default", user-defined ones under "custom".
// Custom templates must round-trip exactly.
type Bundle struct {
	Default    map[string]*models.ProjectTypeSchema `json:"default"`
	Custom     map[string]*models.ProjectTypeSchema `json:"custom"`
	ExportDate string                               `json:"exportDate"`
}

// RawBundle keeps entries undecoded so an import can validate and skip
// individual templates without aborting the whole payload.
type RawBundle struct {
	Default    map[string]json.RawMessage `json:"default"`
	Custom     map[string]json.RawMessage `json:"custom"`
	ExportDate string                     `json:"exportDate"`
}

// LoadFile reads a bundle file without decoding individual templates.
func LoadFile(path string) (*RawBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw RawBundle
	err = json.Unmarshal(data, &raw)
	return &raw, err
}

// WriteFile serializes the bundle to disk, indented for hand inspection.
func (b *Bundle) WriteFile(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
