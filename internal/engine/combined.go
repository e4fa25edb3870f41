// internal/engine/combined.go
package engine

import (
	"bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/models"
)

// CalculateCombined aggregates several project types into one adjusted P&L.
// Cached results are reused; missing ones are computed from the registry
// schema with defaults. Any unknown id fails the whole aggregation.
func (e *Engine) CalculateCombined(ids []string, adj models.Adjustments) (*models.CombinedResult, error) {
	if len(ids) == 0 {
		return nil, errors.NewUnknownProjectTypeError("")
	}

	var revenue, costs, investment float64
	for _, id := range ids {
		result, err := e.resultFor(id)
		if err != nil {
			return nil, err
		}
		revenue += result.Revenue.Annual
		costs += result.Costs.Annual
		investment += result.Investment
	}

	revenue *= adj.RevenueFactor()
	costs *= adj.CostFactor()
	profit := revenue - costs

	return &models.CombinedResult{
		TypeIDs:       append([]string(nil), ids...),
		Revenue:       revenue,
		Costs:         costs,
		Investment:    investment,
		Profit:        profit,
		MonthlyProfit: profit / 12,
		ROI:           models.DeriveROI(investment, profit),
		Adjustments:   adj,
	}, nil
}

// GenerateCashFlow projects the combined annual figures over months with an
// even distribution, starting from a zero opening balance. months defaults
// to 12 when non-positive.
func (e *Engine) GenerateCashFlow(ids []string, adj models.Adjustments, months int) ([]models.CashFlowRow, error) {
	combined, err := e.CalculateCombined(ids, adj)
	if err != nil {
		return nil, err
	}
	if months <= 0 {
		months = 12
	}

	inflow := combined.Revenue / 12
	outflow := combined.Costs / 12
	net := inflow - outflow

	rows := make([]models.CashFlowRow, 0, months)
	balance := 0.0
	for m := 1; m <= months; m++ {
		row := models.CashFlowRow{
			Month:   m,
			Opening: balance,
			Inflow:  inflow,
			Outflow: outflow,
			Net:     net,
		}
		balance += net
		row.Closing = balance
		rows = append(rows, row)
	}
	return rows, nil
}
