package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumController_ListAlbums(t *testing.T) {
	fake := &fakeCatalogService{albums: []domain.AlbumSummary{
		{Name: "Trip", PhotoCount: 3},
		{Name: "Home", PhotoCount: 1},
		{Name: "Work", PhotoCount: 0},
	}}
	ctrl := NewAlbumController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.ListAlbums(rr, newRequest(t, http.MethodGet, "/albums?page=2&page_size=2", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var data ListAlbumsResponse
	envelope := decodeEnvelope(t, rr, &data)
	require.Nil(t, envelope.Error)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 2}, fake.lastPage)
	assert.Equal(t, []domain.AlbumSummary{{Name: "Work", PhotoCount: 0}}, data.Items)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 2, Total: 3, TotalPages: 2}, data.Pagination)
}

func TestAlbumController_ListAlbumsEmpty(t *testing.T) {
	ctrl := NewAlbumController(testLogger, &fakeCatalogService{})
	rr := httptest.NewRecorder()
	ctrl.ListAlbums(rr, newRequest(t, http.MethodGet, "/albums", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[]`)
}

func TestAlbumController_CreateAlbum(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		fakeErr        error
		wantStatus     int
		wantCode       string
		wantBodySubstr string
	}{
		{name: "created", body: AlbumNameRequest{Name: "Trip"}, wantStatus: http.StatusCreated},
		{name: "missing name", body: AlbumNameRequest{Name: "  "}, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest, wantBodySubstr: "name is required"},
		{name: "unknown field", body: `{"name":"Trip","color":"red"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "duplicate", body: AlbumNameRequest{Name: "trip"}, fakeErr: fmt.Errorf("%w: album %q", domain.ErrDuplicateName, "trip"), wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeConflict, wantBodySubstr: "duplicate name"},
		{name: "service error", body: AlbumNameRequest{Name: "Trip"}, fakeErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError, wantBodySubstr: "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogService{err: tt.fakeErr}
			ctrl := NewAlbumController(testLogger, fake)
			rr := httptest.NewRecorder()
			ctrl.CreateAlbum(rr, newRequest(t, http.MethodPost, "/albums", "", tt.body))

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var data domain.AlbumSummary
			envelope := decodeEnvelope(t, rr, &data)
			if tt.wantCode == "" {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "Trip", data.Name)
				assert.Equal(t, "Trip", fake.lastAlbum)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestAlbumController_GetAlbum(t *testing.T) {
	fake := &fakeCatalogService{albums: []domain.AlbumSummary{{Name: "Trip", PhotoCount: 2}}}
	ctrl := NewAlbumController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.GetAlbum(rr, newRequest(t, http.MethodGet, "/albums/trip", "trip", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var data domain.AlbumSummary
	decodeEnvelope(t, rr, &data)
	assert.Equal(t, domain.AlbumSummary{Name: "Trip", PhotoCount: 2}, data)

	rr = httptest.NewRecorder()
	ctrl.GetAlbum(rr, newRequest(t, http.MethodGet, "/albums/nope", "nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	envelope := decodeEnvelope(t, rr, nil)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
}

func TestAlbumController_RenameAlbum(t *testing.T) {
	fake := &fakeCatalogService{}
	ctrl := NewAlbumController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.RenameAlbum(rr, newRequest(t, http.MethodPatch, "/albums/Trip", "Trip", AlbumNameRequest{Name: "Paris 2024"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Trip", fake.lastAlbum)
	assert.Equal(t, "Paris 2024", fake.lastNewName)

	fake.err = domain.ErrDuplicateName
	rr = httptest.NewRecorder()
	ctrl.RenameAlbum(rr, newRequest(t, http.MethodPatch, "/albums/Trip", "Trip", AlbumNameRequest{Name: "Home"}))
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAlbumController_DeleteAlbum(t *testing.T) {
	fake := &fakeCatalogService{}
	ctrl := NewAlbumController(testLogger, fake)

	rr := httptest.NewRecorder()
	ctrl.DeleteAlbum(rr, newRequest(t, http.MethodDelete, "/albums/Trip", "Trip", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var data DeleteAlbumResponse
	decodeEnvelope(t, rr, &data)
	assert.Equal(t, "deleted", data.Status)
	assert.Equal(t, "Trip", fake.lastAlbum)

	fake.err = fmt.Errorf("album %q: %w", "Trip", domain.ErrNotFound)
	rr = httptest.NewRecorder()
	ctrl.DeleteAlbum(rr, newRequest(t, http.MethodDelete, "/albums/Trip", "Trip", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
