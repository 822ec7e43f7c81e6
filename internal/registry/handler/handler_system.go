package handler

import (
	"net/http"

	"registry7/internal/registry/model"

	"github.com/labstack/echo/v4"
)

// GetSystemByID handles GET /system/:id
func (h *RegistryHandler) GetSystemByID(c echo.Context) error {
	res := h.Service.GetSystem(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// GetSystems handles GET /system. A name query parameter turns the request
// into a lookup by name; otherwise it is a paginated list.
func (h *RegistryHandler) GetSystems(c echo.Context) error {
	var q model.ListQuery
	if err := c.Bind(&q); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid query parameters", model.KeyMissingDataInput)
	}
	if err := q.Validate(); err != nil {
		return validationError(c, err)
	}

	if q.ByName() {
		res := h.Service.GetSystemByName(c.Request().Context(), q.Name)
		return writeResult(c, res, http.StatusOK)
	}

	res := h.Service.ListSystems(c.Request().Context(), q.Page, q.Size)
	return writeListResult(c, res)
}

// PostSystem handles POST /system
func (h *RegistryHandler) PostSystem(c echo.Context) error {
	var req model.SystemRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.CreateSystem(c.Request().Context(), req)
	return writeResult(c, res, http.StatusCreated)
}

// PutSystem handles PUT /system/:id
func (h *RegistryHandler) PutSystem(c echo.Context) error {
	var req model.SystemRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.UpdateSystem(c.Request().Context(), c.Param("id"), req)
	return writeResult(c, res, http.StatusOK)
}

// DeleteSystem handles DELETE /system/:id
func (h *RegistryHandler) DeleteSystem(c echo.Context) error {
	res := h.Service.DeleteSystem(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// DeleteAllSystems handles DELETE /system
func (h *RegistryHandler) DeleteAllSystems(c echo.Context) error {
	res := h.Service.DeleteAllSystems(c.Request().Context())
	return writeDeleteAll(c, res, "All systems were successfully removed from the database.")
}
