// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizplan-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func validSchema() *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           "bakery",
		Name:         "Bakery",
		BusinessType: "product",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{{ID: "ovenCost", Name: "Oven", Type: models.FieldCurrency, DefaultValue: 20000}},
			Revenue:    []models.FieldSpec{{ID: "salesRevenue", Name: "Sales", Type: models.FieldCurrency, DefaultValue: 120000}},
			Operating:  []models.FieldSpec{{ID: "flour", Name: "Flour", Type: models.FieldCurrency, DefaultValue: 9000}},
			Staffing:   []models.FieldSpec{},
		},
	}
}

// ==========================
// Template Validation Tests
// ==========================

func TestValidateTemplate_Valid(t *testing.T) {
	result := ValidateTemplate(validSchema())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateTemplate_Failures(t *testing.T) {
	f := func(mutate func(s *models.ProjectTypeSchema)) *ValidationResult {
		s := validSchema()
		mutate(s)
		return ValidateTemplate(s)
	}

	tests := []struct {
		name         string
		mutate       func(s *models.ProjectTypeSchema)
		expectedCode string
	}{
		{
			name:         "missing id",
			mutate:       func(s *models.ProjectTypeSchema) { s.ID = "" },
			expectedCode: "REQUIRED_FIELD_MISSING",
		},
		{
			name:         "missing name",
			mutate:       func(s *models.ProjectTypeSchema) { s.Name = "" },
			expectedCode: "REQUIRED_FIELD_MISSING",
		},
		{
			name:         "absent category array",
			mutate:       func(s *models.ProjectTypeSchema) { s.Categories.Revenue = nil },
			expectedCode: "CATEGORY_MISSING",
		},
		{
			name: "field without id",
			mutate: func(s *models.ProjectTypeSchema) {
				s.Categories.Operating[0].ID = ""
			},
			expectedCode: "REQUIRED_FIELD_MISSING",
		},
		{
			name: "duplicate field id within category",
			mutate: func(s *models.ProjectTypeSchema) {
				s.Categories.Operating = append(s.Categories.Operating, s.Categories.Operating[0])
			},
			expectedCode: "DUPLICATE_FIELD_ID",
		},
		{
			name: "unknown field type",
			mutate: func(s *models.ProjectTypeSchema) {
				s.Categories.Revenue[0].Type = "text"
			},
			expectedCode: "UNKNOWN_FIELD_TYPE",
		},
		{
			name: "inverted bounds",
			mutate: func(s *models.ProjectTypeSchema) {
				lo, hi := 10.0, 1.0
				s.Categories.Revenue[0].Min = &lo
				s.Categories.Revenue[0].Max = &hi
			},
			expectedCode: "BOUNDS_INVERTED",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f(tt.mutate)
			require.False(t, result.Valid)

			codes := make([]string, len(result.Errors))
			for i, e := range result.Errors {
				codes[i] = e.Code
			}
			assert.Contains(t, codes, tt.expectedCode)
			assert.NotEmpty(t, result.Summary())
		})
	}
}

func TestValidateTemplate_NilSchema(t *testing.T) {
	result := ValidateTemplate(nil)
	assert.False(t, result.Valid)
}

func TestValidateTemplate_DuplicateAcrossCategoriesAllowed(t *testing.T) {
	// Uniqueness is per category: a revenue driver and an operating cost
	// may share an id.
	s := validSchema()
	s.Categories.Operating = append(s.Categories.Operating, models.FieldSpec{
		ID: "salesRevenue", Name: "Rev share fee", Type: models.FieldCurrency,
	})
	assert.True(t, ValidateTemplate(s).Valid)
}

// ==========================
// Import Entry Tests
// ==========================

func TestValidateImportEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   map[string]interface{}
		wantErr bool
	}{
		{
			name: "complete entry",
			entry: map[string]interface{}{
				"id":   "bakery",
				"name": "Bakery",
				"categories": map[string]interface{}{
					"investment": []interface{}{},
					"revenue":    []interface{}{},
					"operating":  []interface{}{},
					"staffing":   []interface{}{},
				},
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			entry:   map[string]interface{}{"id": "bakery", "categories": map[string]interface{}{}},
			wantErr: true,
		},
		{
			name: "empty id",
			entry: map[string]interface{}{
				"id": "", "name": "Bakery",
				"categories": map[string]interface{}{
					"investment": []interface{}{}, "revenue": []interface{}{},
					"operating": []interface{}{}, "staffing": []interface{}{},
				},
			},
			wantErr: true,
		},
		{
			name: "missing category key",
			entry: map[string]interface{}{
				"id": "bakery", "name": "Bakery",
				"categories": map[string]interface{}{
					"investment": []interface{}{}, "revenue": []interface{}{},
				},
			},
			wantErr: true,
		},
		{
			name: "categories not an object",
			entry: map[string]interface{}{
				"id": "bakery", "name": "Bakery", "categories": "nope",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImportEntry(tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
