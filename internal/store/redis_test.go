// internal/store/redis_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizplan-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisWithClient(client)
}

func testTemplate(id string) *models.ProjectTypeSchema {
	return &models.ProjectTypeSchema{
		ID:           id,
		Name:         "Test Template",
		BusinessType: "service",
		Categories: models.FieldCategories{
			Investment: []models.FieldSpec{},
			Revenue:    []models.FieldSpec{{ID: "serviceRevenue", Name: "Revenue", Type: models.FieldCurrency, DefaultValue: 50000}},
			Operating:  []models.FieldSpec{},
			Staffing:   []models.FieldSpec{},
		},
	}
}

// ==========================
// Template Persistence Tests
// ==========================

func TestRedisStore_TemplateRoundTrip(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveTemplate(ctx, testTemplate("food-truck")))

	loaded, err := st.GetTemplate(ctx, "food-truck")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "food-truck", loaded.ID)
	assert.Equal(t, "Test Template", loaded.Name)
	require.Len(t, loaded.Categories.Revenue, 1)
	assert.Equal(t, 50000.0, loaded.Categories.Revenue[0].DefaultValue)
}

func TestRedisStore_GetTemplate_Missing(t *testing.T) {
	st := createTestStore(t)

	loaded, err := st.GetTemplate(context.Background(), "no-such-template")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_ListTemplates(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	list, err := st.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, st.SaveTemplate(ctx, testTemplate("a")))
	require.NoError(t, st.SaveTemplate(ctx, testTemplate("b")))

	list, err = st.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRedisStore_DeleteTemplate(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveTemplate(ctx, testTemplate("doomed")))
	require.NoError(t, st.DeleteTemplate(ctx, "doomed"))

	loaded, err := st.GetTemplate(ctx, "doomed")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an absent key is not an error.
	assert.NoError(t, st.DeleteTemplate(ctx, "doomed"))
}

// ==========================
// Scenario Persistence Tests
// ==========================

func TestRedisStore_ScenarioRoundTrip(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	sc := &models.Scenario{
		ID:            "sc-1",
		Name:          "Optimistic gym",
		ProjectTypeID: "gym",
		Values:        models.ValueBag{"monthlyMembers": 90, "rampUpEnabled": 1},
		CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.SaveScenario(ctx, sc))

	loaded, err := st.GetScenario(ctx, "sc-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sc.Name, loaded.Name)
	assert.Equal(t, sc.ProjectTypeID, loaded.ProjectTypeID)
	assert.Equal(t, sc.Values, loaded.Values)
	assert.True(t, sc.CreatedAt.Equal(loaded.CreatedAt))
}

func TestRedisStore_ListAndDeleteScenarios(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveScenario(ctx, &models.Scenario{ID: "sc-1", Name: "A", ProjectTypeID: "gym"}))
	require.NoError(t, st.SaveScenario(ctx, &models.Scenario{ID: "sc-2", Name: "B", ProjectTypeID: "padel"}))

	list, err := st.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, st.DeleteScenario(ctx, "sc-1"))
	list, err = st.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sc-2", list[0].ID)
}

// ==========================
// Selection State Tests
// ==========================

func TestRedisStore_SelectionRoundTrip(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	// Absent selection reads as the zero state.
	sel, err := st.GetSelection(ctx)
	require.NoError(t, err)
	assert.Empty(t, sel.SelectedTypeIDs)

	saved := models.SelectionState{
		BusinessType:    "member",
		SelectedTypeIDs: []string{"gym", "fitness-studio"},
		ActiveTypeID:    "gym",
	}
	require.NoError(t, st.SaveSelection(ctx, saved))

	sel, err = st.GetSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, sel)
}

// ==========================
// Key Isolation Tests
// ==========================

func TestRedisStore_KeyspacesDoNotCollide(t *testing.T) {
	st := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveTemplate(ctx, testTemplate("gym-variant")))
	require.NoError(t, st.SaveScenario(ctx, &models.Scenario{ID: "gym-variant", Name: "Scenario", ProjectTypeID: "gym"}))

	templates, err := st.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 1)

	scenarios, err := st.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Len(t, scenarios, 1)

	require.NoError(t, st.DeleteTemplate(ctx, "gym-variant"))
	sc, err := st.GetScenario(ctx, "gym-variant")
	require.NoError(t, err)
	assert.NotNil(t, sc)
}
