package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"locallibrary/internal/shared/middleware"
	"locallibrary/internal/shared/response"
	"locallibrary/pkg/container"
	"locallibrary/web"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine: middleware, templates, then routes.
func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()
	debug := !c.Config.IsProduction()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Global middlewares. ErrorPage runs innermost so it sees handler errors
	// before Logger records the final status.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(debug),
	)

	if c.Config.Metrics.Enabled {
		metrics := middleware.NewMetrics(c.Config.Metrics.Namespace)
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	router.Use(middleware.ErrorPage(debug))

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, errors.New("page not found"))
	})

	router.GET("/healthz", healthCheckHandler(c))
	router.GET("/", c.CatalogHandler.Root)

	setupCatalogRoutes(router, c)

	return router, nil
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(router *gin.Engine, c *container.Container) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)
		catalog.GET("/", c.CatalogHandler.Index)

		c.AuthorHandler.RegisterRoutes(catalog)
		c.GenreHandler.RegisterRoutes(catalog)
		c.BookHandler.RegisterRoutes(catalog)
		c.BookInstanceHandler.RegisterRoutes(catalog)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		data := gin.H{
			"status":  "ok",
			"store":   c.Config.Store.Driver,
			"version": c.Config.App.Version,
		}

		if err := c.HealthCheck(checkCtx); err != nil {
			data["status"] = "unavailable"
			data["error"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, response.Response{
				Success: false,
				Data:    data,
			})
			return
		}

		if c.DB != nil {
			if stats, err := c.DB.Stats(); err == nil {
				data["pool"] = stats
			}
		}

		response.Success(ctx, http.StatusOK, data)
	}
}
