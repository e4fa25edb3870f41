// internal/api/project_types.go
package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	apperrors "bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/models"
	"bizplan-engine/internal/registry"
)

// projectTypeSummary is the list representation: enough to render a
// picker without shipping every field spec.
type projectTypeSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	BusinessType string `json:"businessType"`
	Builtin      bool   `json:"builtin"`
}

func (s *Server) listProjectTypes(c echo.Context) error {
	if tag := c.QueryParam("business_type"); tag != "" {
		schemas := s.registry.ByBusinessType(tag)
		out := make([]projectTypeSummary, 0, len(schemas))
		for _, schema := range schemas {
			out = append(out, s.summarize(schema))
		}
		return c.JSON(http.StatusOK, out)
	}

	all := s.registry.All()
	out := make([]projectTypeSummary, 0, len(all))
	for _, schema := range all {
		out = append(out, s.summarize(schema))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) summarize(schema *models.ProjectTypeSchema) projectTypeSummary {
	return projectTypeSummary{
		ID:           schema.ID,
		Name:         schema.Name,
		Description:  schema.Description,
		Icon:         schema.Icon,
		BusinessType: schema.BusinessType,
		Builtin:      s.registry.IsBuiltin(schema.ID),
	}
}

func (s *Server) getProjectType(c echo.Context) error {
	schema, err := s.registry.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schema)
}

func (s *Server) setProjectType(c echo.Context) error {
	id := c.Param("id")

	var schema models.ProjectTypeSchema
	if err := c.Bind(&schema); err != nil {
		return apperrors.NewTemplateValidationError("request body is not a project type schema: " + err.Error())
	}

	if err := s.registry.Set(c.Request().Context(), id, &schema); err != nil {
		return err
	}
	s.engine.InvalidateCache(id)

	stored, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

func (s *Server) deleteProjectType(c echo.Context) error {
	id := c.Param("id")
	if err := s.registry.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	s.engine.InvalidateCache(id)
	return c.NoContent(http.StatusNoContent)
}

type cloneRequest struct {
	NewID   string `json:"new_id"`
	NewName string `json:"new_name"`
}

func (s *Server) cloneProjectType(c echo.Context) error {
	var req cloneRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewTemplateValidationError("invalid clone request: " + err.Error())
	}

	derived, err := s.registry.CreateFromTemplate(c.Request().Context(), c.Param("id"), req.NewID, req.NewName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, derived)
}

func (s *Server) exportConfiguration(c echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.Export())
}

type importResponse struct {
	Imported []string                 `json:"imported"`
	Skipped  []registry.SkippedEntry  `json:"skipped,omitempty"`
}

func (s *Server) importConfiguration(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return apperrors.NewImportParseError(err)
	}

	report, err := s.registry.Import(c.Request().Context(), body)
	if err != nil {
		return err
	}
	for _, id := range report.Imported {
		s.engine.InvalidateCache(id)
	}
	return c.JSON(http.StatusOK, importResponse{Imported: report.Imported, Skipped: report.Skipped})
}
