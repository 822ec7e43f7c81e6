package handler

import (
	"net/http"

	"registry7/internal/registry/model"

	"github.com/labstack/echo/v4"
)

// GetAssetCategoryByID handles GET /asset-category/:id
func (h *RegistryHandler) GetAssetCategoryByID(c echo.Context) error {
	res := h.Service.GetAssetCategory(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// GetAssetCategories handles GET /asset-category
func (h *RegistryHandler) GetAssetCategories(c echo.Context) error {
	var q model.ListQuery
	if err := c.Bind(&q); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid query parameters", model.KeyMissingDataInput)
	}
	if err := q.Validate(); err != nil {
		return validationError(c, err)
	}

	if q.ByName() {
		res := h.Service.GetAssetCategoryByName(c.Request().Context(), q.Name)
		return writeResult(c, res, http.StatusOK)
	}

	res := h.Service.ListAssetCategories(c.Request().Context(), q.Page, q.Size)
	return writeListResult(c, res)
}

// PostAssetCategory handles POST /asset-category
func (h *RegistryHandler) PostAssetCategory(c echo.Context) error {
	var req model.AssetCategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.CreateAssetCategory(c.Request().Context(), req)
	return writeResult(c, res, http.StatusCreated)
}

// PutAssetCategory handles PUT /asset-category/:id
func (h *RegistryHandler) PutAssetCategory(c echo.Context) error {
	var req model.AssetCategoryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid body", model.KeyMissingDataInput)
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err)
	}

	res := h.Service.UpdateAssetCategory(c.Request().Context(), c.Param("id"), req)
	return writeResult(c, res, http.StatusOK)
}

// DeleteAssetCategory handles DELETE /asset-category/:id
func (h *RegistryHandler) DeleteAssetCategory(c echo.Context) error {
	res := h.Service.DeleteAssetCategory(c.Request().Context(), c.Param("id"))
	return writeResult(c, res, http.StatusOK)
}

// DeleteAllAssetCategories handles DELETE /asset-category
func (h *RegistryHandler) DeleteAllAssetCategories(c echo.Context) error {
	res := h.Service.DeleteAllAssetCategories(c.Request().Context())
	return writeDeleteAll(c, res, "All asset categories were successfully removed from the database.")
}
