// internal/engine/inputs.go
package engine

import "bizplan-engine/internal/models"

// Inputs resolves field values for one calculation. Every lookup falls back
// to the field's declared default (or 0 without one), so a partially filled
// form never fails a calculation.
type Inputs struct {
	Schema *models.ProjectTypeSchema
	Bag    models.ValueBag
}

func newInputs(schema *models.ProjectTypeSchema, bag models.ValueBag) *Inputs {
	if bag == nil {
		bag = models.ValueBag{}
	}
	return &Inputs{Schema: schema, Bag: bag}
}

// Value returns the usable bag value for a field id, the field's default
// when the bag entry is missing or unusable, and 0 when the schema does not
// declare the field either.
func (in *Inputs) Value(id string) float64 {
	if v, ok := in.Bag[id]; ok && models.Usable(v) {
		return v
	}
	if f, ok := in.Schema.FindField(id); ok {
		return f.DefaultValue
	}
	return 0
}

// FieldValue resolves a concrete FieldSpec against the bag.
func (in *Inputs) FieldValue(f *models.FieldSpec) float64 {
	if v, ok := in.Bag[f.ID]; ok && models.Usable(v) {
		return v
	}
	return f.DefaultValue
}

// Flag reports whether a boolean field resolves truthy.
func (in *Inputs) Flag(id string) bool {
	return in.Value(id) != 0
}

// HasRaw reports whether the value bag itself contains the key, regardless
// of schema defaults.
func (in *Inputs) HasRaw(id string) bool {
	_, ok := in.Bag[id]
	return ok
}

// HasField reports whether the schema declares the field.
func (in *Inputs) HasField(id string) bool {
	_, ok := in.Schema.FindField(id)
	return ok
}

// eventsFactor is the per-event scale applied to fields marked PerEvent:
// the events-per-year count when the template or bag carries one, else 1.
func (in *Inputs) eventsFactor() float64 {
	if in.HasRaw("eventsPerYear") || in.HasField("eventsPerYear") {
		return in.Value("eventsPerYear")
	}
	return 1
}
