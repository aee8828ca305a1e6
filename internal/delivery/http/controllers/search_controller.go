package controllers

import (
	"log/slog"
	"net/http"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// SearchRequest is the request body for POST /search.
type SearchRequest struct {
	Mode     string             `json:"mode" example:"and"`
	Criteria []domain.Criterion `json:"criteria"`
}

// Validate implements Validator. An empty criteria list is valid and yields no results.
func (s SearchRequest) Validate() []string {
	if _, err := domain.ParseMatchMode(s.Mode); err != nil {
		return []string{"mode must be and or or"}
	}
	return nil
}

// SearchResponse is the response body for POST /search.
type SearchResponse struct {
	Mode       string                 `json:"mode"`
	Items      []domain.SearchHit     `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// SearchSuccessResponse is the success response envelope for POST /search (200).
type SearchSuccessResponse struct {
	Data  SearchResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SearchController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewSearchController(logger *slog.Logger, svc domain.CatalogService) *SearchController {
	return &SearchController{
		Logger:  logger,
		Service: svc,
	}
}

// Search godoc
// @Summary Search photos by tag
// @Description Exact, case-insensitive tag matching across every album. Mode "and" requires every criterion, "or" any of them. Each photo reference is reported once, with the first album in catalog order that contains it.
// @Tags search
// @Accept json
// @Produce json
// @Param query body SearchRequest true "Mode and criteria"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.SearchSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /search [post]
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	mode, _ := domain.ParseMatchMode(req.Mode)
	params := helpers.ParsePagination(r)

	hits, err := c.Service.Search(r.Context(), mode, req.Criteria)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	items, meta := helpers.Page(hits, params)
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchResponse{Mode: mode.String(), Items: items, Pagination: meta})
}
