// internal/models/result_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// ROI Derivation Tests
// ==========================

func TestDeriveROI(t *testing.T) {
	tests := []struct {
		name           string
		investment     float64
		profit         float64
		expectedROI    float64
		expectedYears  Horizon
		expectedMonths Horizon
	}{
		{
			name:           "profitable project",
			investment:     100000,
			profit:         40000,
			expectedROI:    40,
			expectedYears:  FiniteHorizon(3),
			expectedMonths: FiniteHorizon(30),
		},
		{
			name:           "exact yearly payback",
			investment:     120000,
			profit:         120000,
			expectedROI:    100,
			expectedYears:  FiniteHorizon(1),
			expectedMonths: FiniteHorizon(12),
		},
		{
			name:           "fractional payback rounds up",
			investment:     100000,
			profit:         30000,
			expectedROI:    30,
			expectedYears:  FiniteHorizon(4),
			expectedMonths: FiniteHorizon(40),
		},
		{
			name:           "loss-making never pays back",
			investment:     100000,
			profit:         -5000,
			expectedROI:    -5,
			expectedYears:  NeverHorizon(),
			expectedMonths: NeverHorizon(),
		},
		{
			name:           "break-even never pays back",
			investment:     100000,
			profit:         0,
			expectedROI:    0,
			expectedYears:  NeverHorizon(),
			expectedMonths: NeverHorizon(),
		},
		{
			name:           "zero investment is not computable",
			investment:     0,
			profit:         50000,
			expectedROI:    0,
			expectedYears:  NeverHorizon(),
			expectedMonths: NeverHorizon(),
		},
		{
			name:           "negative investment is not computable",
			investment:     -10,
			profit:         50000,
			expectedROI:    0,
			expectedYears:  NeverHorizon(),
			expectedMonths: NeverHorizon(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roi := DeriveROI(tt.investment, tt.profit)
			assert.InDelta(t, tt.expectedROI, roi.ROIPercentage, 0.001)
			assert.Equal(t, tt.expectedYears, roi.PaybackYears)
			assert.Equal(t, tt.expectedMonths, roi.BreakEvenMonth)
		})
	}
}

func TestHorizon_SerializesWithoutInfinities(t *testing.T) {
	roi := DeriveROI(100000, -5000)
	data, err := json.Marshal(roi)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Inf")
	assert.NotContains(t, string(data), "NaN")
	assert.Contains(t, string(data), `"never":true`)
}

// ==========================
// Adjustment Tests
// ==========================

func TestAdjustments_Factors(t *testing.T) {
	assert.Equal(t, 1.0, Adjustments{}.RevenueFactor())
	assert.Equal(t, 1.0, Adjustments{RevenueMultiplier: -3}.RevenueFactor())
	assert.Equal(t, 1.25, Adjustments{RevenueMultiplier: 1.25}.RevenueFactor())

	assert.Equal(t, 1.0, Adjustments{}.CostFactor())
	assert.Equal(t, 1.0, Adjustments{CostMultiplier: 0}.CostFactor())
	assert.Equal(t, 0.8, Adjustments{CostMultiplier: 0.8}.CostFactor())
}
