// internal/engine/engine.go
package engine

import (
	"context"
	"sync"
	"time"

	"bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/common/metrics"
	"bizplan-engine/internal/common/observability"
	"bizplan-engine/internal/models"
)

// SchemaResolver resolves project-type ids for combined aggregation. The
// registry satisfies it; Calculate itself never resolves ids, it is handed
// a schema by the caller.
type SchemaResolver interface {
	Get(id string) (*models.ProjectTypeSchema, error)
}

// Engine derives financial metrics from a schema and a value bag. It is a
// pure function of its explicit inputs apart from the latest-result cache
// kept per project-type id for combined aggregation.
type Engine struct {
	strategies map[string]RevenueStrategy
	fallback   RevenueStrategy
	hooks      map[string]staffingHook
	resolver   SchemaResolver
	log        logger.Logger
	obs        *observability.Observability

	mu    sync.RWMutex
	cache map[string]models.CalculationResult
}

// New builds an engine with the built-in strategy and hook tables.
// The observability handle may be nil.
func New(log logger.Logger, resolver SchemaResolver, obs *observability.Observability) *Engine {
	return &Engine{
		strategies: defaultStrategies(),
		fallback:   genericStrategy{},
		hooks:      defaultStaffingHooks(),
		resolver:   resolver,
		log:        log.WithFields(map[string]interface{}{"component": "engine"}),
		obs:        obs,
		cache:      make(map[string]models.CalculationResult),
	}
}

// Calculate derives the full result for one project type. A nil schema is
// a hard failure: it signals a registry/UI desync, never a zero result.
// Missing bag entries fall back to field defaults throughout.
func (e *Engine) Calculate(schema *models.ProjectTypeSchema, bag models.ValueBag) (*models.CalculationResult, error) {
	if schema == nil {
		metrics.CalculationsFailed.WithLabelValues("", string(errors.ErrCodeUnknownProjectType)).Inc()
		return nil, errors.NewUnknownProjectTypeError("")
	}
	start := time.Now()
	in := newInputs(schema, bag)

	strategy, ok := e.strategies[schema.ID]
	if !ok {
		strategy = e.fallback
	}

	revenueAnnual, revenueBreakdown := strategy.Calculate(in)
	operating, costBreakdown := operatingCost(in)
	staffing, staffingBreakdown := staffingCost(in, e.hooks[schema.ID])
	investment, investmentBreakdown := investmentTotal(in)
	for id, v := range investmentBreakdown {
		costBreakdown["investment:"+id] = v
	}

	costsAnnual := operating + staffing
	profit := revenueAnnual - costsAnnual

	result := &models.CalculationResult{
		TypeID:   schema.ID,
		TypeName: schema.Name,
		Revenue: models.Revenue{
			Annual:  revenueAnnual,
			Monthly: revenueAnnual / 12,
			Daily:   revenueAnnual / 365,
		},
		Costs: models.Costs{
			Annual:    costsAnnual,
			Monthly:   costsAnnual / 12,
			Operating: operating,
			Staffing:  staffing,
		},
		Investment:    investment,
		Profit:        profit,
		MonthlyProfit: profit / 12,
		ROI:           models.DeriveROI(investment, profit),
		Breakdown: models.Breakdown{
			Revenue:  revenueBreakdown,
			Costs:    costBreakdown,
			Staffing: staffingBreakdown,
		},
	}

	e.mu.Lock()
	e.cache[schema.ID] = *result
	e.mu.Unlock()

	elapsed := time.Since(start)
	metrics.CalculationsCompleted.WithLabelValues(schema.ID).Inc()
	metrics.CalculationDuration.WithLabelValues(schema.ID).Observe(elapsed.Seconds())
	if e.obs != nil {
		e.obs.RecordCalculation(context.Background(), schema.ID, "success")
		e.obs.RecordCalculationDuration(context.Background(), elapsed, schema.ID)
	}

	return result, nil
}

// CachedResult returns the latest result computed for a project type id.
func (e *Engine) CachedResult(typeID string) (models.CalculationResult, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	result, ok := e.cache[typeID]
	return result, ok
}

// InvalidateCache drops the cached result for a project type, used when a
// template is replaced or deleted.
func (e *Engine) InvalidateCache(typeID string) {
	e.mu.Lock()
	delete(e.cache, typeID)
	e.mu.Unlock()
}

// resultFor returns the cached result for an id, computing one from the
// registry schema with defaults when nothing was calculated yet. Unknown
// ids propagate as hard failures.
func (e *Engine) resultFor(typeID string) (models.CalculationResult, error) {
	if result, ok := e.CachedResult(typeID); ok {
		return result, nil
	}
	if e.resolver == nil {
		return models.CalculationResult{}, errors.NewUnknownProjectTypeError(typeID)
	}
	schema, err := e.resolver.Get(typeID)
	if err != nil {
		return models.CalculationResult{}, errors.NewUnknownProjectTypeError(typeID)
	}
	result, err := e.Calculate(schema, nil)
	if err != nil {
		return models.CalculationResult{}, err
	}
	return *result, nil
}
