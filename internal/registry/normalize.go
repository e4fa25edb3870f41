// internal/registry/normalize.go
package registry

import (
	"strings"

	"bizplan-engine/internal/models"
)

// normalize derives the explicit per-field metadata (Role, RoleGroup via
// naming, PerEvent, PerUnitOf) for templates that still rely on the legacy
// naming convention. Built-ins author the flags directly; this runs once at
// registration so the calculation path never string-matches field ids.
func normalize(schema *models.ProjectTypeSchema) {
	for i := range schema.Categories.Staffing {
		f := &schema.Categories.Staffing[i]
		if f.Role == models.RoleNone {
			switch {
			case strings.HasSuffix(f.ID, "Salary"), strings.HasSuffix(f.ID, "Sal"), strings.HasSuffix(f.ID, "Rate"):
				f.Role = models.RoleRate
			case f.Type == models.FieldNumber || f.Type == models.FieldBoolean:
				f.Role = models.RoleCount
			}
		}
		if f.RoleGroup == "" && f.Role != models.RoleNone {
			f.RoleGroup = roleBase(f.ID)
		}
		if !f.PerEvent && containsFold(f.ID, "event") {
			f.PerEvent = true
		}
	}

	for i := range schema.Categories.Operating {
		f := &schema.Categories.Operating[i]
		if !f.PerEvent && containsFold(f.ID, "event") {
			f.PerEvent = true
		}
	}

	for i := range schema.Categories.Investment {
		f := &schema.Categories.Investment[i]
		if f.PerUnitOf == "" && f.ID == "courtCost" {
			f.PerUnitOf = "courts"
		}
	}
}

// roleBase strips the rate/count suffixes so a headcount field and its
// salary field land in the same role group.
func roleBase(id string) string {
	for _, suffix := range []string{"Salary", "Sal", "Rate", "Count"} {
		if strings.HasSuffix(id, suffix) && len(id) > len(suffix) {
			return strings.TrimSuffix(id, suffix)
		}
	}
	return id
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
