// internal/api/error_handler.go
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bizplan-engine/internal/common/errors"
)

// ErrorResponse is the single JSON error shape of the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// httpErrorHandler funnels every handler error through the error taxonomy:
// StandardError codes map to their status, echo's own HTTP errors pass
// through, anything else is a 500 without leaking internals.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		_ = c.JSON(he.Code, ErrorResponse{Code: "HTTP_ERROR", Message: msg})
		return
	}

	stdErr := apperrors.Normalize(err)
	status := apperrors.HTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed", map[string]interface{}{
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		})
	}

	_ = c.JSON(status, ErrorResponse{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
	})
}
