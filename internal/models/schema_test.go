// internal/models/schema_test.go
package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// ValueBag Tests
// ==========================

func TestValueBag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ValueBag
	}{
		{
			name:     "plain numbers",
			input:    `{"courts": 3, "peakRate": 40.5}`,
			expected: ValueBag{"courts": 3, "peakRate": 40.5},
		},
		{
			name:     "booleans coerce to one and zero",
			input:    `{"rampUpEnabled": true, "propertyManager": false}`,
			expected: ValueBag{"rampUpEnabled": 1, "propertyManager": 0},
		},
		{
			name:     "numeric strings parse",
			input:    `{"monthlyRent": "2400", "occupancy": "92.5"}`,
			expected: ValueBag{"monthlyRent": 2400, "occupancy": 92.5},
		},
		{
			name:     "unparseable entries are dropped",
			input:    `{"courts": "three", "note": null, "nested": {"a": 1}, "valid": 7}`,
			expected: ValueBag{"valid": 7},
		},
		{
			name:     "empty object",
			input:    `{}`,
			expected: ValueBag{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bag ValueBag
			require.NoError(t, json.Unmarshal([]byte(tt.input), &bag))
			assert.Equal(t, tt.expected, bag)
		})
	}
}

func TestValueBag_UnmarshalJSON_NotAnObject(t *testing.T) {
	var bag ValueBag
	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &bag))
}

func TestUsable(t *testing.T) {
	assert.True(t, Usable(0))
	assert.True(t, Usable(42.5))
	assert.False(t, Usable(-1))
	assert.False(t, Usable(math.Inf(1)))
	assert.False(t, Usable(math.NaN()))
}

// ==========================
// Schema Tests
// ==========================

func testSchema() *ProjectTypeSchema {
	min := 0.0
	max := 100.0
	return &ProjectTypeSchema{
		ID:           "demo",
		Name:         "Demo",
		BusinessType: "service",
		Categories: FieldCategories{
			Investment: []FieldSpec{{ID: "setupCost", Name: "Setup", Type: FieldCurrency, DefaultValue: 10000}},
			Revenue:    []FieldSpec{{ID: "occupancy", Name: "Occupancy", Type: FieldPercentage, DefaultValue: 80, Min: &min, Max: &max}},
			Operating:  []FieldSpec{{ID: "rent", Name: "Rent", Type: FieldCurrency, DefaultValue: 12000}},
			Staffing:   []FieldSpec{{ID: "staffSalary", Name: "Salary", Type: FieldCurrency, DefaultValue: 30000, Options: []string{"a", "b"}}},
		},
	}
}

func TestProjectTypeSchema_Clone_IsDeep(t *testing.T) {
	original := testSchema()
	clone := original.Clone()

	clone.Name = "mutated"
	clone.Categories.Revenue[0].DefaultValue = -1
	*clone.Categories.Revenue[0].Max = 999
	clone.Categories.Staffing[0].Options[0] = "z"

	assert.Equal(t, "Demo", original.Name)
	assert.Equal(t, 80.0, original.Categories.Revenue[0].DefaultValue)
	assert.Equal(t, 100.0, *original.Categories.Revenue[0].Max)
	assert.Equal(t, "a", original.Categories.Staffing[0].Options[0])
}

func TestProjectTypeSchema_Clone_Nil(t *testing.T) {
	var s *ProjectTypeSchema
	assert.Nil(t, s.Clone())
}

func TestProjectTypeSchema_FindField(t *testing.T) {
	s := testSchema()

	f, ok := s.FindField("rent")
	require.True(t, ok)
	assert.Equal(t, FieldCurrency, f.Type)

	_, ok = s.FindField("no-such-field")
	assert.False(t, ok)
}

func TestProjectTypeSchema_EachField_CoversAllCategories(t *testing.T) {
	s := testSchema()

	seen := map[string]string{}
	s.EachField(func(category string, f *FieldSpec) {
		seen[f.ID] = category
	})
	assert.Equal(t, map[string]string{
		"setupCost":   "investment",
		"occupancy":   "revenue",
		"rent":        "operating",
		"staffSalary": "staffing",
	}, seen)
}
