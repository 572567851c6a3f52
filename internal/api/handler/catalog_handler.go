package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickalba/job-board-system/internal/core/ports"
)

// CatalogHandler serves the lookup lists the filter panel renders.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Get handles GET /v1/catalog.
//
// @Summary      Lookup lists for the filter panel
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  ports.Catalog
// @Router       /v1/catalog [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	cat, err := h.catalog.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}
