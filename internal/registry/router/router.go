package router

import (
	"registry7/internal/registry/handler"
	"registry7/internal/registry/observability"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, h *handler.RegistryHandler, metrics *observability.Metrics) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)
	v1.Use(handler.MetricsMiddleware(metrics))

	// System Routes
	v1.GET("/system/:id", h.GetSystemByID)
	v1.GET("/system", h.GetSystems)
	v1.POST("/system", h.PostSystem)
	v1.PUT("/system/:id", h.PutSystem)
	v1.DELETE("/system/:id", h.DeleteSystem)
	v1.DELETE("/system", h.DeleteAllSystems)

	// Vendor Routes
	v1.GET("/vendor/:id", h.GetVendorByID)
	v1.GET("/vendor", h.GetVendors)
	v1.POST("/vendor", h.PostVendor)
	v1.PUT("/vendor/:id", h.PutVendor)
	v1.DELETE("/vendor/:id", h.DeleteVendor)
	v1.DELETE("/vendor", h.DeleteAllVendors)

	// Asset Category Routes
	v1.GET("/asset-category/:id", h.GetAssetCategoryByID)
	v1.GET("/asset-category", h.GetAssetCategories)
	v1.POST("/asset-category", h.PostAssetCategory)
	v1.PUT("/asset-category/:id", h.PutAssetCategory)
	v1.DELETE("/asset-category/:id", h.DeleteAssetCategory)
	v1.DELETE("/asset-category", h.DeleteAllAssetCategories)
}
