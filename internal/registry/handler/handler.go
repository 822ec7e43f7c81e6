package handler

import (
	"net/http"

	"registry7/internal/registry/service"

	"github.com/labstack/echo/v4"
)

type RegistryHandler struct {
	Service service.RegistryService
}

func NewRegistryHandler(s service.RegistryService) *RegistryHandler {
	return &RegistryHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
