// internal/models/result.go
package models

import "math"

// Horizon is a count of periods that may be unbounded. A "never" horizon is
// distinguishable from every finite value, so business code never leaks
// Inf/NaN into a financial figure; the render boundary decides how to show it.
type Horizon struct {
	Value float64 `json:"value"`
	Never bool    `json:"never,omitempty"`
}

// FiniteHorizon wraps a finite period count.
func FiniteHorizon(v float64) Horizon { return Horizon{Value: v} }

// NeverHorizon is the sentinel for payback/break-even that never occurs.
func NeverHorizon() Horizon { return Horizon{Never: true} }

func (h Horizon) IsNever() bool { return h.Never }

// Revenue is the derived revenue figure at three granularities.
type Revenue struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
	Daily   float64 `json:"daily"`
}

// Costs splits the annual cost figure into its two sources.
type Costs struct {
	Annual    float64 `json:"annual"`
	Monthly   float64 `json:"monthly"`
	Operating float64 `json:"operating"`
	Staffing  float64 `json:"staffing"`
}

// ROI carries the return metrics. PaybackYears and BreakEvenMonth use the
// Horizon sentinel when the investment never pays back.
type ROI struct {
	ROIPercentage  float64 `json:"roiPercentage"`
	PaybackYears   Horizon `json:"paybackYears"`
	BreakEvenMonth Horizon `json:"breakEvenMonth"`
}

// Breakdown is structured per-template detail mirroring the formula inputs,
// derived data for display only.
type Breakdown struct {
	Revenue  map[string]float64 `json:"revenue"`
	Costs    map[string]float64 `json:"costs"`
	Staffing map[string]float64 `json:"staffing"`
}

// CalculationResult is the full derived output for one project type.
// Recomputed on demand, never persisted.
type CalculationResult struct {
	TypeID        string    `json:"typeId"`
	TypeName      string    `json:"typeName"`
	Revenue       Revenue   `json:"revenue"`
	Costs         Costs     `json:"costs"`
	Investment    float64   `json:"investment"`
	Profit        float64   `json:"profit"`
	MonthlyProfit float64   `json:"monthlyProfit"`
	ROI           ROI       `json:"roi"`
	Breakdown     Breakdown `json:"breakdown"`
}

// Adjustments scale a combined P&L; zero values mean "no adjustment".
type Adjustments struct {
	RevenueMultiplier float64 `json:"revenueMultiplier,omitempty"`
	CostMultiplier    float64 `json:"costMultiplier,omitempty"`
}

// RevenueFactor returns the effective revenue multiplier.
func (a Adjustments) RevenueFactor() float64 {
	if a.RevenueMultiplier <= 0 {
		return 1
	}
	return a.RevenueMultiplier
}

// CostFactor returns the effective cost multiplier.
func (a Adjustments) CostFactor() float64 {
	if a.CostMultiplier <= 0 {
		return 1
	}
	return a.CostMultiplier
}

// CombinedResult aggregates several project types into one P&L.
type CombinedResult struct {
	TypeIDs       []string    `json:"typeIds"`
	Revenue       float64     `json:"revenue"`
	Costs         float64     `json:"costs"`
	Investment    float64     `json:"investment"`
	Profit        float64     `json:"profit"`
	MonthlyProfit float64     `json:"monthlyProfit"`
	ROI           ROI         `json:"roi"`
	Adjustments   Adjustments `json:"adjustments"`
}

// CashFlowRow is one month of the evenly distributed projection.
type CashFlowRow struct {
	Month   int     `json:"month"`
	Opening float64 `json:"opening"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"net"`
	Closing float64 `json:"closing"`
}

// DeriveROI computes the return metrics from annual profit and total
// investment, honoring the sentinel law: a non-positive investment is not
// computable, a non-positive profit never pays back.
func DeriveROI(investment, profit float64) ROI {
	if investment <= 0 {
		return ROI{ROIPercentage: 0, PaybackYears: NeverHorizon(), BreakEvenMonth: NeverHorizon()}
	}
	roi := ROI{ROIPercentage: profit / investment * 100}
	if profit > 0 {
		roi.PaybackYears = FiniteHorizon(math.Ceil(investment / profit))
		roi.BreakEvenMonth = FiniteHorizon(math.Ceil(investment / (profit / 12)))
	} else {
		roi.PaybackYears = NeverHorizon()
		roi.BreakEvenMonth = NeverHorizon()
	}
	return roi
}
