package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

// AddPhotoRequest is the request body for POST /albums/{name}/photos. When
// display_name is omitted it is derived from the last segment of resource_ref.
type AddPhotoRequest struct {
	ResourceRef string `json:"resource_ref"`
	DisplayName string `json:"display_name"`
}

// Validate implements Validator.
func (a AddPhotoRequest) Validate() []string {
	if strings.TrimSpace(a.ResourceRef) == "" {
		return []string{"resource_ref is required"}
	}
	return nil
}

// MovePhotoRequest is the request body for POST /albums/{name}/photos/move.
type MovePhotoRequest struct {
	ResourceRef string `json:"resource_ref"`
	Target      string `json:"target"`
}

// Validate implements Validator.
func (m MovePhotoRequest) Validate() []string {
	var errs []string
	if m.ResourceRef == "" {
		errs = append(errs, "resource_ref is required")
	}
	if strings.TrimSpace(m.Target) == "" {
		errs = append(errs, "target is required")
	}
	return errs
}

// TagRequest is the request body for POST /albums/{name}/photos/tags.
type TagRequest struct {
	ResourceRef string `json:"resource_ref"`
	Category    string `json:"category"`
	Value       string `json:"value"`
}

// Validate implements Validator. Category and value rules are checked by the service.
func (t TagRequest) Validate() []string {
	var errs []string
	if t.ResourceRef == "" {
		errs = append(errs, "resource_ref is required")
	}
	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, "category is required")
	}
	if strings.TrimSpace(t.Value) == "" {
		errs = append(errs, "value is required")
	}
	return errs
}

// ChangeResponse reports whether a mutation changed the catalog. Changed is
// false for no-ops such as adding a photo the album already holds.
type ChangeResponse struct {
	Changed bool `json:"changed"`
}

// ListPhotosSuccessResponse is the success response envelope for GET /albums/{name}/photos (200).
type ListPhotosSuccessResponse struct {
	Data  []domain.PhotoDetail `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// PhotoSuccessResponse is the success response envelope for GET /albums/{name}/photos/detail (200).
type PhotoSuccessResponse struct {
	Data  *domain.PhotoDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ChangeSuccessResponse is the success response envelope for photo and tag mutations.
type ChangeSuccessResponse struct {
	Data  ChangeResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type PhotoController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewPhotoController(logger *slog.Logger, svc domain.CatalogService) *PhotoController {
	return &PhotoController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPhotos godoc
// @Summary List photos in an album
// @Description Photos in display order with their tags and positions.
// @Tags photos
// @Produce json
// @Param name path string true "Album name"
// @Success 200 {object} controllers.ListPhotosSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos [get]
func (c *PhotoController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := c.Service.ListPhotos(r.Context(), r.PathValue("name"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if photos == nil {
		photos = []domain.PhotoDetail{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, photos)
}

// AddPhoto godoc
// @Summary Add a photo to an album
// @Description Appends the photo. Returns 201 with changed=true when added, 200 with changed=false when the album already holds the reference.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Album name"
// @Param photo body AddPhotoRequest true "Photo"
// @Success 201 {object} controllers.ChangeSuccessResponse
// @Success 200 {object} controllers.ChangeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos [post]
func (c *PhotoController) AddPhoto(w http.ResponseWriter, r *http.Request) {
	var req AddPhotoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	displayName := req.DisplayName
	if strings.TrimSpace(displayName) == "" {
		displayName = domain.DisplayNameFromRef(req.ResourceRef)
	}
	added, err := c.Service.AddPhoto(r.Context(), r.PathValue("name"), req.ResourceRef, displayName)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, ChangeResponse{Changed: added})
}

// RemovePhoto godoc
// @Summary Remove a photo from an album
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param name path string true "Album name"
// @Param ref query string true "Resource reference"
// @Success 200 {object} controllers.ChangeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos [delete]
func (c *PhotoController) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	ref, ok := requireRef(w, r)
	if !ok {
		return
	}
	removed, err := c.Service.RemovePhoto(r.Context(), r.PathValue("name"), ref)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChangeResponse{Changed: removed})
}

// GetPhoto godoc
// @Summary Get one photo
// @Description The photo with its position and the neighbouring references, for previous/next navigation.
// @Tags photos
// @Produce json
// @Param name path string true "Album name"
// @Param ref query string true "Resource reference"
// @Success 200 {object} controllers.PhotoSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos/detail [get]
func (c *PhotoController) GetPhoto(w http.ResponseWriter, r *http.Request) {
	ref, ok := requireRef(w, r)
	if !ok {
		return
	}
	photo, err := c.Service.GetPhoto(r.Context(), r.PathValue("name"), ref)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, photo)
}

// PhotoContent godoc
// @Summary Photo bytes
// @Description Streams the resource behind the photo's reference with its detected content type.
// @Tags photos
// @Produce octet-stream
// @Param name path string true "Album name"
// @Param ref query string true "Resource reference"
// @Success 200 {file} binary
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (photo or resource)"
// @Router /albums/{name}/photos/content [get]
func (c *PhotoController) PhotoContent(w http.ResponseWriter, r *http.Request) {
	ref, ok := requireRef(w, r)
	if !ok {
		return
	}
	res, err := c.Service.PhotoContent(r.Context(), r.PathValue("name"), ref)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteBlob(w, res.ContentType, res.Data)
}

// MovePhoto godoc
// @Summary Move a photo to another album
// @Description Moves the photo with its tags to the end of the target album. changed=false when the target already holds the reference; nothing is modified then.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Source album name"
// @Param move body MovePhotoRequest true "Reference and target album"
// @Success 200 {object} controllers.ChangeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos/move [post]
func (c *PhotoController) MovePhoto(w http.ResponseWriter, r *http.Request) {
	var req MovePhotoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	moved, err := c.Service.MovePhoto(r.Context(), req.ResourceRef, r.PathValue("name"), req.Target)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChangeResponse{Changed: moved})
}

// AddTag godoc
// @Summary Tag a photo
// @Description Adds a person or location tag. changed=false when an equal tag (ignoring case) is already present.
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Album name"
// @Param tag body TagRequest true "Tag"
// @Success 200 {object} controllers.ChangeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos/tags [post]
func (c *PhotoController) AddTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	added, err := c.Service.AddTag(r.Context(), r.PathValue("name"), req.ResourceRef, req.Category, req.Value)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChangeResponse{Changed: added})
}

// RemoveTag godoc
// @Summary Remove a tag from a photo
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param name path string true "Album name"
// @Param ref query string true "Resource reference"
// @Param category query string true "person or location"
// @Param value query string true "Tag value"
// @Success 200 {object} controllers.ChangeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /albums/{name}/photos/tags [delete]
func (c *PhotoController) RemoveTag(w http.ResponseWriter, r *http.Request) {
	ref, ok := requireRef(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	removed, err := c.Service.RemoveTag(r.Context(), r.PathValue("name"), ref, q.Get("category"), q.Get("value"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChangeResponse{Changed: removed})
}

// requireRef reads the ref query parameter, writing a 400 when it is missing.
func requireRef(w http.ResponseWriter, r *http.Request) (string, bool) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing ref")
		return "", false
	}
	return ref, true
}
