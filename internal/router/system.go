package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movies-api/internal/handler"
)

// registerSystemRoutes mounts the health check and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", handler.StaticFS())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
