package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"photocatalog/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing,
// malformed or non-positive values fall back to the defaults; page_size is
// capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     queryInt(q, "page", DefaultPage),
		PageSize: min(queryInt(q, "page_size", DefaultPageSize), MaxPageSize),
	}
}

func queryInt(q url.Values, key string, fallback int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta describes the page returned in a list response.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds the metadata for one page out of total items.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// Page cuts the window described by params out of items. The returned slice
// is never nil so it encodes as [].
func Page[T any](items []T, params domain.PaginationParams) ([]T, PaginationMeta) {
	start, end := params.Window(len(items))
	page := make([]T, end-start)
	copy(page, items[start:end])
	return page, NewPaginationMeta(params.Page, params.PageSize, len(items))
}
