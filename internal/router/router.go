// Package router builds the Echo instance: global middleware in order,
// the system routes and the versionless /movies API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/movies-api/internal/handler"
	"github.com/deppfellow/movies-api/internal/middleware"
	"github.com/deppfellow/movies-api/internal/server"
)

// NewRouter returns the fully configured Echo instance.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Global.BodyLimit(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limiter())
	}

	registerSystemRoutes(router, h)
	registerMovieRoutes(router, h)

	return router
}
