// internal/engine/revenue.go
package engine

import (
	"strings"

	"bizplan-engine/internal/models"
)

// RevenueStrategy is one bespoke annual-revenue formula. Strategies are
// keyed by project-type id (not by business-type tag) so each template
// keeps its own arithmetic; anything without a bespoke formula falls back
// to the generic summation.
type RevenueStrategy interface {
	Name() string
	Calculate(in *Inputs) (annual float64, breakdown map[string]float64)
}

// defaultStrategies maps every built-in template id to its formula. The
// table is resolved once at engine construction, not re-branched per call.
func defaultStrategies() map[string]RevenueStrategy {
	return map[string]RevenueStrategy{
		"padel":                timeSlotStrategy{},
		"gym":                  membershipStrategy{},
		"fitness-studio":       membershipStrategy{},
		"saas":                 tieredSubscriptionStrategy{},
		"subscription-box":     churnSubscriptionStrategy{},
		"ecommerce":            ecommerceStrategy{},
		"consulting":           hourlyStrategy{},
		"events":               ticketedStrategy{},
		"education":            workshopStrategy{},
		"car-rental":           fleetStrategy{},
		"coupon-platform":      couponStrategy{},
		"realestate":           rentalYieldStrategy{},
		"capex":                phasedBenefitStrategy{},
		"licensing":            royaltyStrategy{},
		"partnership":          revenueShareStrategy{},
		"investment-portfolio": portfolioReturnStrategy{},
		"efficiency":           efficiencyStrategy{},
		"contracts":            renewalStrategy{},
	}
}

// genericStrategy is the fallback every user-created template relies on:
// sum all currency-typed revenue fields whose id contains "revenue"
// (case-insensitive). Kept literally compatible with the legacy behavior.
type genericStrategy struct{}

func (genericStrategy) Name() string { return "generic" }

func (genericStrategy) Calculate(in *Inputs) (float64, map[string]float64) {
	total := 0.0
	breakdown := map[string]float64{}
	for i := range in.Schema.Categories.Revenue {
		f := &in.Schema.Categories.Revenue[i]
		if f.Type != models.FieldCurrency {
			continue
		}
		if !strings.Contains(strings.ToLower(f.ID), "revenue") {
			continue
		}
		v := in.FieldValue(f)
		total += v
		breakdown[f.ID] = v
	}
	return total, breakdown
}
