// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizplan-engine/internal/api"
	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/engine"
	"bizplan-engine/internal/models"
	"bizplan-engine/internal/registry"
	"bizplan-engine/internal/store"
)

// The e2e suite drives the whole stack through real HTTP: echo server,
// registry, engine and a Redis store (miniredis), exactly as wired in the
// server binary minus the network listener.

type env struct {
	server  *httptest.Server
	client  *http.Client
	mini    *miniredis.Miniredis
	storage *store.RedisStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	st := store.NewRedisWithClient(client)

	reg := registry.New(log, st)
	eng := engine.New(log, reg, nil)
	srv := api.New(log, reg, eng, st)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &env{server: ts, client: ts.Client(), mini: mr, storage: st}
}

func (e *env) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestFullPlanningWorkflow(t *testing.T) {
	e := newEnv(t)

	// 1. Browse the catalog.
	resp, body := e.do(t, http.MethodGet, "/api/v1/project-types", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var catalog []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &catalog))
	assert.Len(t, catalog, 18)

	// 2. Calculate a padel club with a custom court count.
	resp, body = e.do(t, http.MethodPost, "/api/v1/calculations/padel", models.ValueBag{"courts": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var padel models.CalculationResult
	require.NoError(t, json.Unmarshal(body, &padel))
	assert.Equal(t, "padel", padel.TypeID)
	assert.Greater(t, padel.Revenue.Annual, 0.0)
	assert.InDelta(t, padel.Revenue.Annual-padel.Costs.Annual, padel.Profit, 0.01)

	// 3. Derive a custom template from the gym and recalculate.
	resp, body = e.do(t, http.MethodPost, "/api/v1/project-types/gym/clone",
		map[string]string{"new_id": "crossfit-box", "new_name": "CrossFit Box"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = e.do(t, http.MethodPost, "/api/v1/calculations/crossfit-box", models.ValueBag{"monthlyMembers": 120})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var crossfit models.CalculationResult
	require.NoError(t, json.Unmarshal(body, &crossfit))
	assert.Equal(t, "CrossFit Box", crossfit.TypeName)

	// 4. Combine both projects with a revenue haircut.
	resp, body = e.do(t, http.MethodPost, "/api/v1/calculations/combined", map[string]interface{}{
		"ids":         []string{"padel", "crossfit-box"},
		"adjustments": models.Adjustments{RevenueMultiplier: 0.9},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var combined models.CombinedResult
	require.NoError(t, json.Unmarshal(body, &combined))
	expectedRevenue := (padel.Revenue.Annual + crossfit.Revenue.Annual) * 0.9
	assert.InDelta(t, expectedRevenue, combined.Revenue, 0.01)

	// 5. Project the cash flow and check the running balance.
	resp, body = e.do(t, http.MethodPost, "/api/v1/calculations/cashflow", map[string]interface{}{
		"ids": []string{"padel", "crossfit-box"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []models.CashFlowRow
	require.NoError(t, json.Unmarshal(body, &rows))
	require.Len(t, rows, 12)
	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, rows[i-1].Closing, rows[i].Opening, 0.01)
	}

	// 6. Save the working values as a scenario and read it back.
	resp, body = e.do(t, http.MethodPost, "/api/v1/scenarios", map[string]interface{}{
		"name":          "Two-site plan",
		"projectTypeId": "crossfit-box",
		"values":        models.ValueBag{"monthlyMembers": 120},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var scenario models.Scenario
	require.NoError(t, json.Unmarshal(body, &scenario))

	resp, body = e.do(t, http.MethodGet, "/api/v1/scenarios/"+scenario.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 7. Persist the selection the dashboard would restore.
	resp, _ = e.do(t, http.MethodPut, "/api/v1/session/selection", models.SelectionState{
		BusinessType:    "member",
		SelectedTypeIDs: []string{"padel", "crossfit-box"},
		ActiveTypeID:    "crossfit-box",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCustomTemplateSurvivesRestart(t *testing.T) {
	e := newEnv(t)

	resp, _ := e.do(t, http.MethodPost, "/api/v1/project-types/saas/clone",
		map[string]string{"new_id": "saas-eu", "new_name": "SaaS EU"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A new registry against the same Redis sees the custom template.
	log := logger.NewTestLogger(t)
	reloaded := registry.New(log, e.storage)
	schema, err := reloaded.Get("saas-eu")
	require.NoError(t, err)
	assert.Equal(t, "SaaS EU", schema.Name)
}

func TestConfigurationExportImportAcrossInstances(t *testing.T) {
	source := newEnv(t)
	target := newEnv(t)

	resp, _ := source.do(t, http.MethodPost, "/api/v1/project-types/events/clone",
		map[string]string{"new_id": "festival", "new_name": "Festival"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, exported := source.do(t, http.MethodGet, "/api/v1/configuration/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, target.server.URL+"/api/v1/configuration/import", bytes.NewReader(exported))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	importResp, err := target.client.Do(req)
	require.NoError(t, err)
	defer importResp.Body.Close()
	require.Equal(t, http.StatusOK, importResp.StatusCode)

	resp, body := target.do(t, http.MethodGet, "/api/v1/project-types/festival", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var schema models.ProjectTypeSchema
	require.NoError(t, json.Unmarshal(body, &schema))
	assert.Equal(t, "Festival", schema.Name)
}

func TestStoreOutageDegradesGracefully(t *testing.T) {
	e := newEnv(t)

	// Calculations keep working when Redis goes away; scenario writes fail
	// with a retryable store error.
	e.mini.Close()

	resp, _ := e.do(t, http.MethodPost, "/api/v1/calculations/gym", models.ValueBag{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := e.do(t, http.MethodPost, "/api/v1/scenarios", map[string]interface{}{
		"name":          "Doomed",
		"projectTypeId": "gym",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "STORE_UNAVAILABLE")

	resp, _ = e.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpointExposesCalculationCounters(t *testing.T) {
	e := newEnv(t)

	for i := 0; i < 3; i++ {
		resp, _ := e.do(t, http.MethodPost, "/api/v1/calculations/gym", models.ValueBag{})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := e.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "engine_calculations_completed_total")
	assert.Contains(t, string(body), `project_type="gym"`)
}
