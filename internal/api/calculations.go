// internal/api/calculations.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/models"
)

func (s *Server) calculate(c echo.Context) error {
	schema, err := s.registry.Get(c.Param("id"))
	if err != nil {
		return err
	}

	bag := models.ValueBag{}
	body, err := readBody(c)
	if err != nil {
		return apperrors.NewTemplateValidationError("could not read value bag: " + err.Error())
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &bag); err != nil {
			return apperrors.NewTemplateValidationError("request body is not a value bag: " + err.Error())
		}
	}

	result, err := s.engine.Calculate(schema, bag)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type combinedRequest struct {
	IDs         []string           `json:"ids"`
	Adjustments models.Adjustments `json:"adjustments"`
}

func (s *Server) calculateCombined(c echo.Context) error {
	var req combinedRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewTemplateValidationError("invalid combined request: " + err.Error())
	}

	result, err := s.engine.CalculateCombined(req.IDs, req.Adjustments)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type cashFlowRequest struct {
	IDs         []string           `json:"ids"`
	Adjustments models.Adjustments `json:"adjustments"`
	Months      int                `json:"months"`
}

func (s *Server) generateCashFlow(c echo.Context) error {
	var req cashFlowRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewTemplateValidationError("invalid cash flow request: " + err.Error())
	}

	rows, err := s.engine.GenerateCashFlow(req.IDs, req.Adjustments, req.Months)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
