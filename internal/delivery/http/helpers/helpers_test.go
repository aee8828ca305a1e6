package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photocatalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: empty name", domain.ErrInvalidArgument), http.StatusBadRequest, ErrCodeBadRequest},
		{fmt.Errorf("album %q: %w", "x", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{domain.ErrResourceUnavailable, http.StatusNotFound, ErrCodeNotFound},
		{domain.ErrDuplicateName, http.StatusConflict, ErrCodeConflict},
		{domain.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
		{domain.ErrIO, http.StatusInternalServerError, ErrCodeInternalError},
		{errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code := StatusForError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", DefaultPage, DefaultPageSize},
		{"page=3&page_size=5", 3, 5},
		{"page=0&page_size=-1", DefaultPage, DefaultPageSize},
		{"page=abc", DefaultPage, DefaultPageSize},
		{"page_size=1000", DefaultPage, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://test/albums?"+tt.query, nil)
			p := ParsePagination(r)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
		})
	}
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3}, NewPaginationMeta(2, 10, 21))
}

func TestPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page, meta := Page(items, domain.PaginationParams{Page: 2, PageSize: 2})
	assert.Equal(t, []string{"c", "d"}, page)
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 2, Total: 5, TotalPages: 3}, meta)

	page[0] = "changed"
	assert.Equal(t, "c", items[2], "page must not alias the input")

	page, meta = Page(items, domain.PaginationParams{Page: 9, PageSize: 2})
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 5, meta.Total)

	empty, _ := Page([]int(nil), domain.PaginationParams{Page: 1, PageSize: 20})
	assert.NotNil(t, empty)
}

func TestWriteServiceError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	r := httptest.NewRequest(http.MethodGet, "http://test/albums/Trip", nil)

	rr := httptest.NewRecorder()
	WriteServiceError(rr, r, logger, fmt.Errorf("album %q: %w", "Trip", domain.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, logs.String(), "domain errors are not logged")

	rr = httptest.NewRecorder()
	WriteServiceError(rr, r, logger, fmt.Errorf("%w: disk full", domain.ErrIO))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, logs.String(), "disk full")
	var envelope APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Nil(t, envelope.Data)
	assert.Equal(t, ErrCodeInternalError, envelope.Error.Code)
}

func TestWriteBlob(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteBlob(rr, "image/png", []byte("png"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "3", rr.Header().Get("Content-Length"))
	assert.Equal(t, "png", rr.Body.String())

	rr = httptest.NewRecorder()
	WriteBlob(rr, "", nil)
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
}

type nameRequest struct {
	Name string `json:"name"`
}

func (n nameRequest) Validate() []string {
	if strings.TrimSpace(n.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ok     bool
		substr string
	}{
		{"valid", `{"name":"Trip"}`, true, ""},
		{"unknown field", `{"name":"Trip","extra":1}`, false, "unknown field"},
		{"invalid", `{"name":" "}`, false, "name is required"},
		{"malformed", `{`, false, ""},
		{"empty body", ``, false, "request body is required"},
		{"trailing data", `{"name":"Trip"}{"name":"Home"}`, false, "single JSON object"},
		{"too large", `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, false, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "http://test/albums", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var req nameRequest
			require.Equal(t, tt.ok, DecodeAndValidate(rr, r, &req))
			if tt.ok {
				assert.Equal(t, "Trip", req.Name)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.substr)
		})
	}
}
