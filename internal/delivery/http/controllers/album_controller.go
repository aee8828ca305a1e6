package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// AlbumNameRequest is the request body for POST /albums and PATCH /albums/{name}.
type AlbumNameRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (a AlbumNameRequest) Validate() []string {
	if strings.TrimSpace(a.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// AlbumSuccessResponse is the success response envelope for single-album endpoints.
type AlbumSuccessResponse struct {
	Data  *domain.AlbumSummary `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListAlbumsResponse is the response body for GET /albums.
type ListAlbumsResponse struct {
	Items      []domain.AlbumSummary  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListAlbumsSuccessResponse is the success response envelope for GET /albums (200).
type ListAlbumsSuccessResponse struct {
	Data  ListAlbumsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DeleteAlbumResponse is the response body for DELETE /albums/{name}.
type DeleteAlbumResponse struct {
	Status string `json:"status"`
}

type AlbumController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewAlbumController(logger *slog.Logger, svc domain.CatalogService) *AlbumController {
	return &AlbumController{
		Logger:  logger,
		Service: svc,
	}
}

// ListAlbums godoc
// @Summary List albums
// @Description Albums in catalog order with their photo counts.
// @Tags albums
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListAlbumsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /albums [get]
func (c *AlbumController) ListAlbums(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	albums, total, err := c.Service.ListAlbums(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if albums == nil {
		albums = []domain.AlbumSummary{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListAlbumsResponse{Items: albums, Pagination: meta})
}

// CreateAlbum godoc
// @Summary Create an album
// @Description Creates an empty album. Names are unique ignoring case.
// @Tags albums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param album body AlbumNameRequest true "Album name"
// @Success 201 {object} controllers.AlbumSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /albums [post]
func (c *AlbumController) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req AlbumNameRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	album, err := c.Service.CreateAlbum(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, album)
}

// GetAlbum godoc
// @Summary Get an album
// @Tags albums
// @Produce json
// @Param name path string true "Album name (case-insensitive)"
// @Success 200 {object} controllers.AlbumSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name} [get]
func (c *AlbumController) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := c.Service.GetAlbum(r.Context(), r.PathValue("name"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, album)
}

// RenameAlbum godoc
// @Summary Rename an album
// @Description Renaming to a name held by another album (ignoring case) is rejected. Changing only the case of the album's own name is allowed.
// @Tags albums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Current album name"
// @Param album body AlbumNameRequest true "New name"
// @Success 200 {object} controllers.AlbumSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /albums/{name} [patch]
func (c *AlbumController) RenameAlbum(w http.ResponseWriter, r *http.Request) {
	var req AlbumNameRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	album, err := c.Service.RenameAlbum(r.Context(), r.PathValue("name"), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, album)
}

// DeleteAlbum godoc
// @Summary Delete an album
// @Description Deletes the album and every photo in it.
// @Tags albums
// @Produce json
// @Security BearerAuth
// @Param name path string true "Album name"
// @Success 200 {object} helpers.APIResponse "data.status: deleted"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name} [delete]
func (c *AlbumController) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteAlbum(r.Context(), r.PathValue("name")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteAlbumResponse{Status: "deleted"})
}
