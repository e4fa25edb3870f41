package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"bizplan-engine/internal/models"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (r *ValidationResult) add(field, message, code string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

// Summary joins all error messages into one line for error details.
func (r *ValidationResult) Summary() string {
	if len(r.Errors) == 0 {
		return ""
	}
	out := ""
	for i, e := range r.Errors {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}

var knownFieldTypes = map[models.FieldType]bool{
	models.FieldNumber:     true,
	models.FieldCurrency:   true,
	models.FieldPercentage: true,
	models.FieldBoolean:    true,
	models.FieldSelect:     true,
}

// ValidateTemplate checks the structural invariants of a project type
// schema: id and name set, all four category arrays present (empty is
// allowed, absent is not), known field types and unique field ids within
// each category. Mutating registry operations validate before mutating.
func ValidateTemplate(schema *models.ProjectTypeSchema) *ValidationResult {
	result := &ValidationResult{}
	if schema == nil {
		result.add("schema", "schema is nil", "MISSING_SCHEMA")
		return result
	}
	if schema.ID == "" {
		result.add("id", "required field missing", "REQUIRED_FIELD_MISSING")
	}
	if schema.Name == "" {
		result.add("name", "required field missing", "REQUIRED_FIELD_MISSING")
	}

	categories := map[string][]models.FieldSpec{
		"investment": schema.Categories.Investment,
		"revenue":    schema.Categories.Revenue,
		"operating":  schema.Categories.Operating,
		"staffing":   schema.Categories.Staffing,
	}
	for name, fields := range categories {
		if fields == nil {
			result.add("categories."+name, "category array missing", "CATEGORY_MISSING")
			continue
		}
		seen := map[string]bool{}
		for i, f := range fields {
			path := fmt.Sprintf("categories.%s[%d]", name, i)
			if f.ID == "" {
				result.add(path+".id", "required field missing", "REQUIRED_FIELD_MISSING")
				continue
			}
			if seen[f.ID] {
				result.add(path+".id", fmt.Sprintf("duplicate field id %q", f.ID), "DUPLICATE_FIELD_ID")
			}
			seen[f.ID] = true
			if !knownFieldTypes[f.Type] {
				result.add(path+".type", fmt.Sprintf("unknown field type %q", f.Type), "UNKNOWN_FIELD_TYPE")
			}
			if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
				result.add(path, "min exceeds max", "BOUNDS_INVERTED")
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// templateJSONSchema is the JSON Schema applied to each raw entry of a
// configuration import before it is decoded into a ProjectTypeSchema.
var templateJSONSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"id", "name", "categories"},
	"properties": map[string]interface{}{
		"id":           map[string]interface{}{"type": "string", "minLength": 1},
		"name":         map[string]interface{}{"type": "string", "minLength": 1},
		"description":  map[string]interface{}{"type": "string"},
		"icon":         map[string]interface{}{"type": "string"},
		"businessType": map[string]interface{}{"type": "string"},
		"categories": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"investment", "revenue", "operating", "staffing"},
			"properties": map[string]interface{}{
				"investment": map[string]interface{}{"type": "array"},
				"revenue":    map[string]interface{}{"type": "array"},
				"operating":  map[string]interface{}{"type": "array"},
				"staffing":   map[string]interface{}{"type": "array"},
			},
		},
	},
}

// ValidateImportEntry validates one raw imported template document against
// the template JSON Schema. Used per entry so a bad template is skipped
// without aborting the whole import.
func ValidateImportEntry(entry map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(templateJSONSchema)
	documentLoader := gojsonschema.NewGoLoader(entry)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("template validation failed: %v", errs)
	}

	return nil
}
