// internal/models/schema.go
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FieldType is the semantic type of a configurable input field.
type FieldType string

const (
	FieldNumber     FieldType = "number"
	FieldCurrency   FieldType = "currency"
	FieldPercentage FieldType = "percentage"
	FieldBoolean    FieldType = "boolean"
	FieldSelect     FieldType = "select"
)

// FieldRole marks how a staffing field participates in cost grouping:
// "rate" fields carry a salary or hourly rate, "count" fields carry a
// headcount. Unset means the field is not part of a rate/count pair.
type FieldRole string

const (
	RoleNone  FieldRole = ""
	RoleRate  FieldRole = "rate"
	RoleCount FieldRole = "count"
)

// FieldSpec describes one configurable input of a project type.
type FieldSpec struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         FieldType `json:"type"`
	DefaultValue float64   `json:"defaultValue"`
	Min          *float64  `json:"min,omitempty"`
	Max          *float64  `json:"max,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Group        string    `json:"group,omitempty"`
	Description  string    `json:"description,omitempty"`
	Options      []string  `json:"options,omitempty"`

	// Role and PerEvent replace the legacy field-name sniffing
	// ("ends with Sal/Rate", "contains event"). They are authored on
	// built-in templates and derived once at registration for imported
	// templates that still rely on the naming convention.
	Role     FieldRole `json:"role,omitempty"`
	PerEvent bool      `json:"perEvent,omitempty"`

	// RoleGroup pairs a headcount field with its rate field; both carry the
	// same group name (e.g. "coach" for coaches + coachSalary).
	RoleGroup string `json:"roleGroup,omitempty"`

	// PerUnitOf names a count field this investment cost scales by
	// (e.g. a per-court build cost multiplied by the number of courts).
	PerUnitOf string `json:"perUnitOf,omitempty"`
}

// FieldCategories holds the four input sections of a project type.
// All four slices must be present; empty is allowed.
type FieldCategories struct {
	Investment []FieldSpec `json:"investment"`
	Revenue    []FieldSpec `json:"revenue"`
	Operating  []FieldSpec `json:"operating"`
	Staffing   []FieldSpec `json:"staffing"`
}

// ProjectTypeSchema is one business template.
type ProjectTypeSchema struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Icon         string          `json:"icon,omitempty"`
	BusinessType string          `json:"businessType"`
	Categories   FieldCategories `json:"categories"`
}

// Clone returns a deep copy of the schema. Registry reads hand out clones
// so callers can never mutate a registered template in place.
func (s *ProjectTypeSchema) Clone() *ProjectTypeSchema {
	if s == nil {
		return nil
	}
	out := *s
	out.Categories = FieldCategories{
		Investment: cloneFields(s.Categories.Investment),
		Revenue:    cloneFields(s.Categories.Revenue),
		Operating:  cloneFields(s.Categories.Operating),
		Staffing:   cloneFields(s.Categories.Staffing),
	}
	return &out
}

func cloneFields(fields []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	for i := range out {
		if fields[i].Min != nil {
			v := *fields[i].Min
			out[i].Min = &v
		}
		if fields[i].Max != nil {
			v := *fields[i].Max
			out[i].Max = &v
		}
		if len(fields[i].Options) > 0 {
			out[i].Options = append([]string(nil), fields[i].Options...)
		}
	}
	return out
}

// EachField calls fn for every field across all four categories.
func (s *ProjectTypeSchema) EachField(fn func(category string, f *FieldSpec)) {
	for i := range s.Categories.Investment {
		fn("investment", &s.Categories.Investment[i])
	}
	for i := range s.Categories.Revenue {
		fn("revenue", &s.Categories.Revenue[i])
	}
	for i := range s.Categories.Operating {
		fn("operating", &s.Categories.Operating[i])
	}
	for i := range s.Categories.Staffing {
		fn("staffing", &s.Categories.Staffing[i])
	}
}

// FindField looks a field up by id across all categories.
func (s *ProjectTypeSchema) FindField(id string) (*FieldSpec, bool) {
	var found *FieldSpec
	s.EachField(func(_ string, f *FieldSpec) {
		if found == nil && f.ID == id {
			found = f
		}
	})
	return found, found != nil
}

// ValueBag maps FieldSpec ids to user-supplied raw values. Missing keys are
// never an error; the engine falls back to the field's declared default.
type ValueBag map[string]float64

// UnmarshalJSON accepts numbers, booleans (1/0) and numeric strings, the
// value shapes a live-editing form actually produces. Entries that do not
// parse are dropped so the field default applies instead.
func (b *ValueBag) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode value bag: %w", err)
	}
	out := make(ValueBag, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case float64:
			out[k] = t
		case bool:
			if t {
				out[k] = 1
			} else {
				out[k] = 0
			}
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				out[k] = f
			}
		}
	}
	*b = out
	return nil
}

// Usable reports whether a raw bag value may feed a formula: it must be a
// non-negative finite number, anything else falls back to the default.
func Usable(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
