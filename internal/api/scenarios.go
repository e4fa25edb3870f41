// internal/api/scenarios.go
package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/common/metrics"
	"bizplan-engine/internal/models"
)

type createScenarioRequest struct {
	Name          string          `json:"name"`
	ProjectTypeID string          `json:"projectTypeId"`
	Values        models.ValueBag `json:"values"`
}

func (s *Server) createScenario(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	var req createScenarioRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewTemplateValidationError("invalid scenario request: " + err.Error())
	}
	if req.Name == "" {
		return apperrors.NewTemplateValidationError("scenario name is required")
	}
	// The referenced project type must exist; dangling scenarios are
	// useless to the UI.
	if _, err := s.registry.Get(req.ProjectTypeID); err != nil {
		return err
	}

	sc := &models.Scenario{
		ID:            uuid.New().String(),
		Name:          req.Name,
		ProjectTypeID: req.ProjectTypeID,
		Values:        req.Values,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.SaveScenario(c.Request().Context(), sc); err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	metrics.ScenariosSaved.Inc()
	return c.JSON(http.StatusCreated, sc)
}

func (s *Server) listScenarios(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	list, err := s.store.ListScenarios(c.Request().Context())
	if err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getScenario(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	id := c.Param("id")
	sc, err := s.store.GetScenario(c.Request().Context(), id)
	if err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	if sc == nil {
		return apperrors.NewScenarioNotFoundError(id)
	}
	return c.JSON(http.StatusOK, sc)
}

func (s *Server) deleteScenario(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	id := c.Param("id")
	sc, err := s.store.GetScenario(c.Request().Context(), id)
	if err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	if sc == nil {
		return apperrors.NewScenarioNotFoundError(id)
	}
	if err := s.store.DeleteScenario(c.Request().Context(), id); err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getSelection(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	sel, err := s.store.GetSelection(c.Request().Context())
	if err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	return c.JSON(http.StatusOK, sel)
}

func (s *Server) putSelection(c echo.Context) error {
	if s.store == nil {
		return apperrors.NewStoreUnavailableError(nil)
	}

	var sel models.SelectionState
	if err := c.Bind(&sel); err != nil {
		return apperrors.NewTemplateValidationError("invalid selection state: " + err.Error())
	}
	// Every selected id must resolve, the active one included.
	for _, id := range sel.SelectedTypeIDs {
		if _, err := s.registry.Get(id); err != nil {
			return err
		}
	}
	if sel.ActiveTypeID != "" {
		if _, err := s.registry.Get(sel.ActiveTypeID); err != nil {
			return err
		}
	}

	if err := s.store.SaveSelection(c.Request().Context(), sel); err != nil {
		return apperrors.NewStoreUnavailableError(err)
	}
	return c.JSON(http.StatusOK, sel)
}
