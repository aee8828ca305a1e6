package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCatalogService implements domain.CatalogService for handler tests.
type fakeCatalogService struct {
	err     error // returned by every method when set
	changed bool  // result of boolean mutations

	albums  []domain.AlbumSummary
	photos  []domain.PhotoDetail
	photo   *domain.PhotoDetail
	hits    []domain.SearchHit
	content *domain.Resource

	saves   int
	reloads int

	lastAlbum       string
	lastNewName     string
	lastRef         string
	lastDisplayName string
	lastTarget      string
	lastCategory    string
	lastValue       string
	lastMode        domain.MatchMode
	lastCriteria    []domain.Criterion
	lastPage        domain.PaginationParams
}

func (f *fakeCatalogService) Reload(ctx context.Context) error {
	f.reloads++
	return f.err
}

func (f *fakeCatalogService) Save(ctx context.Context) error {
	f.saves++
	return f.err
}

func (f *fakeCatalogService) ListAlbums(ctx context.Context, page domain.PaginationParams) ([]domain.AlbumSummary, int, error) {
	f.lastPage = page
	if f.err != nil {
		return nil, 0, f.err
	}
	start, end := page.Window(len(f.albums))
	return f.albums[start:end], len(f.albums), nil
}

func (f *fakeCatalogService) GetAlbum(ctx context.Context, name string) (*domain.AlbumSummary, error) {
	f.lastAlbum = name
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.albums {
		if domain.SameName(a.Name, name) {
			a := a
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) CreateAlbum(ctx context.Context, name string) (*domain.AlbumSummary, error) {
	f.lastAlbum = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AlbumSummary{Name: name}, nil
}

func (f *fakeCatalogService) RenameAlbum(ctx context.Context, name, newName string) (*domain.AlbumSummary, error) {
	f.lastAlbum, f.lastNewName = name, newName
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AlbumSummary{Name: newName}, nil
}

func (f *fakeCatalogService) DeleteAlbum(ctx context.Context, name string) error {
	f.lastAlbum = name
	return f.err
}

func (f *fakeCatalogService) ListPhotos(ctx context.Context, album string) ([]domain.PhotoDetail, error) {
	f.lastAlbum = album
	return f.photos, f.err
}

func (f *fakeCatalogService) GetPhoto(ctx context.Context, album, ref string) (*domain.PhotoDetail, error) {
	f.lastAlbum, f.lastRef = album, ref
	return f.photo, f.err
}

func (f *fakeCatalogService) AddPhoto(ctx context.Context, album, ref, displayName string) (bool, error) {
	f.lastAlbum, f.lastRef, f.lastDisplayName = album, ref, displayName
	return f.changed, f.err
}

func (f *fakeCatalogService) RemovePhoto(ctx context.Context, album, ref string) (bool, error) {
	f.lastAlbum, f.lastRef = album, ref
	return f.changed, f.err
}

func (f *fakeCatalogService) MovePhoto(ctx context.Context, ref, from, to string) (bool, error) {
	f.lastRef, f.lastAlbum, f.lastTarget = ref, from, to
	return f.changed, f.err
}

func (f *fakeCatalogService) PhotoContent(ctx context.Context, album, ref string) (*domain.Resource, error) {
	f.lastAlbum, f.lastRef = album, ref
	return f.content, f.err
}

func (f *fakeCatalogService) AddTag(ctx context.Context, album, ref, category, value string) (bool, error) {
	f.lastAlbum, f.lastRef, f.lastCategory, f.lastValue = album, ref, category, value
	return f.changed, f.err
}

func (f *fakeCatalogService) RemoveTag(ctx context.Context, album, ref, category, value string) (bool, error) {
	f.lastAlbum, f.lastRef, f.lastCategory, f.lastValue = album, ref, category, value
	return f.changed, f.err
}

func (f *fakeCatalogService) Search(ctx context.Context, mode domain.MatchMode, criteria []domain.Criterion) ([]domain.SearchHit, error) {
	f.lastMode, f.lastCriteria = mode, criteria
	return f.hits, f.err
}

// newRequest builds a request with an optional JSON body and the album path value.
func newRequest(t *testing.T, method, target, album string, body any) *http.Request {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rdr = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			rdr = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, "http://test"+target, rdr)
	if album != "" {
		req.SetPathValue("name", album)
	}
	return req
}

// decodeEnvelope decodes the API envelope and, when dest is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if dest != nil && envelope.Data != nil {
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, dest))
	}
	return envelope
}
