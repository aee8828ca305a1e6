package controllers

import (
	"log/slog"
	"net/http"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// CatalogStatusResponse is the response body for the catalog lifecycle endpoints.
type CatalogStatusResponse struct {
	Status string `json:"status"`
	Albums int    `json:"albums"`
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// Save godoc
// @Summary Save the catalog
// @Description Writes the whole catalog to the configured storage slot.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.status: saved"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/save [post]
func (c *CatalogController) Save(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Save(r.Context()); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.respond(w, r, "saved")
}

// Reload godoc
// @Summary Reload the catalog
// @Description Replaces the in-memory catalog with the persisted one. Unsaved changes are discarded; an absent or unreadable record gives an empty catalog.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.status: reloaded"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/reload [post]
func (c *CatalogController) Reload(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Reload(r.Context()); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.respond(w, r, "reloaded")
}

func (c *CatalogController) respond(w http.ResponseWriter, r *http.Request, status string) {
	_, total, err := c.Service.ListAlbums(r.Context(), domain.PaginationParams{Page: 1, PageSize: 1})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogStatusResponse{Status: status, Albums: total})
}
