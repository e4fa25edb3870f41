// internal/engine/costs.go
package engine

import "bizplan-engine/internal/models"

// operatingCost sums every currency-typed operating field; fields marked
// per-event scale with the events-per-year count.
func operatingCost(in *Inputs) (float64, map[string]float64) {
	total := 0.0
	breakdown := map[string]float64{}
	for i := range in.Schema.Categories.Operating {
		f := &in.Schema.Categories.Operating[i]
		if f.Type != models.FieldCurrency {
			continue
		}
		v := in.FieldValue(f)
		if f.PerEvent {
			v *= in.eventsFactor()
		}
		total += v
		breakdown[f.ID] = v
	}
	return total, breakdown
}

// staffingHook lets a template rework the generic per-role sum where its
// staffing section encodes something other than headcount times salary
// (one-time project costs, percentage fees).
type staffingHook func(in *Inputs, roles map[string]float64)

func defaultStaffingHooks() map[string]staffingHook {
	return map[string]staffingHook{
		"realestate": realEstateStaffingHook,
		"capex":      capexStaffingHook,
	}
}

// staffingCost groups staffing fields by role: each role costs headcount
// times rate, headcount defaulting to 1 when no count field exists.
// Boolean counts resolve to 1 or 0 through the value bag. Currency fields
// outside any role group are flat annual amounts.
func staffingCost(in *Inputs, hook staffingHook) (float64, map[string]float64) {
	rates := map[string]float64{}
	counts := map[string]float64{}
	hasCount := map[string]bool{}
	perEvent := map[string]bool{}
	roles := map[string]float64{}

	for i := range in.Schema.Categories.Staffing {
		f := &in.Schema.Categories.Staffing[i]
		group := f.RoleGroup
		if group == "" {
			group = f.ID
		}
		switch f.Role {
		case models.RoleRate:
			rates[group] += in.FieldValue(f)
			if f.PerEvent {
				perEvent[group] = true
			}
		case models.RoleCount:
			counts[group] += in.FieldValue(f)
			hasCount[group] = true
			if f.PerEvent {
				perEvent[group] = true
			}
		default:
			if f.Type == models.FieldCurrency {
				roles[f.ID] = in.FieldValue(f)
			}
		}
	}

	for group, rate := range rates {
		count := 1.0
		if hasCount[group] {
			count = counts[group]
		}
		cost := rate * count
		if perEvent[group] {
			cost *= in.eventsFactor()
		}
		roles[group] = cost
	}

	if hook != nil {
		hook(in, roles)
	}

	total := 0.0
	for _, cost := range roles {
		total += cost
	}
	return total, roles
}

// realEstateStaffingHook replaces the generic handyman entry with an
// annualized hourly cost and adds the percentage-of-rent management fee
// when a property manager is engaged. The fee stays out of the generic
// role sum so it is never double counted.
func realEstateStaffingHook(in *Inputs, roles map[string]float64) {
	roles["handyman"] = in.Value("handymanRate") * in.Value("handymanHours") * 12

	if in.Flag("propertyManager") {
		annualRent := in.Value("monthlyRent") * 12 * (in.Value("occupancy") / 100)
		roles["managementFee"] = annualRent * (in.Value("managementFee") / 100)
	} else {
		delete(roles, "managementFee")
	}
}

// capexStaffingHook fully overrides the role sum: project-manager and
// technical rates are one-time rate-times-hours costs, not annualized
// salaries, plus the flat ongoing staff cost.
func capexStaffingHook(in *Inputs, roles map[string]float64) {
	for k := range roles {
		delete(roles, k)
	}
	if in.Flag("projectManager") {
		roles["projectManagement"] = in.Value("pmRate") * in.Value("pmHours")
	}
	roles["technicalStaff"] = in.Value("techRate") * in.Value("techHours")
	roles["ongoingStaff"] = in.Value("ongoingStaff")
}

// investmentTotal sums currency investment fields; a per-unit cost scales
// with its named count field when the template or bag carries it.
func investmentTotal(in *Inputs) (float64, map[string]float64) {
	total := 0.0
	breakdown := map[string]float64{}
	for i := range in.Schema.Categories.Investment {
		f := &in.Schema.Categories.Investment[i]
		if f.Type != models.FieldCurrency {
			continue
		}
		v := in.FieldValue(f)
		if f.PerUnitOf != "" && (in.HasField(f.PerUnitOf) || in.HasRaw(f.PerUnitOf)) {
			v *= in.Value(f.PerUnitOf)
		}
		total += v
		breakdown[f.ID] = v
	}
	return total, breakdown
}
