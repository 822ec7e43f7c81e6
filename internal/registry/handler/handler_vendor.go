package handler

import (
	"net/http"

	"registry7/internal/registry/model"

	"github.com/labstack/echo/v4"
)

// GetVendorByID handles GET /vendor/:id
func (h *RegistryHandler) GetVendorByID(c echo.Context) error {
	res := h.Service.GetVendor(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// GetVendors handles GET /vendor
func (h *RegistryHandler) GetVendors(c echo.Context) error {
	var q model.ListQuery
	if err := c.Bind(&q); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid query parameters", model.KeyMissingDataInput)
	}
	if err := q.Validate(); err != nil {
		return validationError(c, err)
	}

	if q.ByName() {
		res := h.Service.GetVendorByName(c.Request().Context(), q.Name)
		return writeResult(c, res, http.StatusOK)
	}

	res := h.Service.ListVendors(c.Request().Context(), q.Page, q.Size)
	return writeListResult(c, res)
}

// PostVendor handles POST /vendor
func (h *RegistryHandler) PostVendor(c echo.Context) error {
	var req model.VendorRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.CreateVendor(c.Request().Context(), req)
	return writeResult(c, res, http.StatusCreated)
}

// PutVendor handles PUT /vendor/:id
func (h *RegistryHandler) PutVendor(c echo.Context) error {
	var req model.VendorRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.UpdateVendor(c.Request().Context(), c.Param("id"), req)
	return writeResult(c, res, http.StatusOK)
}

// DeleteVendor handles DELETE /vendor/:id
func (h *RegistryHandler) DeleteVendor(c echo.Context) error {
	res := h.Service.DeleteVendor(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// DeleteAllVendors handles DELETE /vendor
func (h *RegistryHandler) DeleteAllVendors(c echo.Context) error {
	res := h.Service.DeleteAllVendors(c.Request().Context())
	return writeDeleteAll(c, res, "All vendors were successfully removed from the database.")
}
