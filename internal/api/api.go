// internal/api/api.go
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/engine"
	"bizplan-engine/internal/registry"
	"bizplan-engine/internal/store"
)

// Server is the HTTP boundary of the calculator: it binds requests, hands
// them to the registry/engine/store and renders results. It carries no
// business logic of its own.
type Server struct {
	router   *echo.Echo
	registry *registry.Registry
	engine   *engine.Engine
	store    store.Store
	log      logger.Logger
}

// New wires the full route table. The store may be nil; scenario and
// selection routes then answer with a store-unavailable error.
func New(log logger.Logger, reg *registry.Registry, eng *engine.Engine, st store.Store) *Server {
	s := &Server{
		router:   echo.New(),
		registry: reg,
		engine:   eng,
		store:    st,
		log:      log.WithFields(map[string]interface{}{"component": "api"}),
	}

	s.router.HideBanner = true
	s.router.HTTPErrorHandler = s.httpErrorHandler
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.RequestID())

	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.router.Group("/api/v1")

	types := api.Group("/project-types")
	types.GET("", s.listProjectTypes)
	types.GET("/:id", s.getProjectType)
	types.PUT("/:id", s.setProjectType)
	types.DELETE("/:id", s.deleteProjectType)
	types.POST("/:id/clone", s.cloneProjectType)

	cfg := api.Group("/configuration")
	cfg.GET("/export", s.exportConfiguration)
	cfg.POST("/import", s.importConfiguration)

	calc := api.Group("/calculations")
	calc.POST("/combined", s.calculateCombined)
	calc.POST("/cashflow", s.generateCashFlow)
	calc.POST("/:id", s.calculate)

	scenarios := api.Group("/scenarios")
	scenarios.POST("", s.createScenario)
	scenarios.GET("", s.listScenarios)
	scenarios.GET("/:id", s.getScenario)
	scenarios.DELETE("/:id", s.deleteScenario)

	session := api.Group("/session")
	session.GET("/selection", s.getSelection)
	session.PUT("/selection", s.putSelection)

	return s
}

// Serve blocks until the listener fails or the server is shut down.
func (s *Server) Serve(addr string) error {
	s.log.Info("http server listening", map[string]interface{}{"addr": addr})
	if err := s.router.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

// Handler exposes the router for tests driving requests via httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if s.store != nil {
		if err := s.store.Ping(c.Request().Context()); err != nil {
			status["status"] = "degraded"
			status["store"] = err.Error()
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		status["store"] = "ok"
	}
	return c.JSON(http.StatusOK, status)
}

func readBody(c echo.Context) ([]byte, error) {
	defer func() { _ = c.Request().Body.Close() }()
	return io.ReadAll(c.Request().Body)
}
