package domain

import "context"

// AlbumSummary is a read-only view of an album.
// swagger:model AlbumSummary
type AlbumSummary struct {
	Name       string `json:"name"`
	PhotoCount int    `json:"photo_count"`
}

// NewAlbumSummary snapshots a.
func NewAlbumSummary(a *Album) AlbumSummary {
	return AlbumSummary{Name: a.Name(), PhotoCount: a.Len()}
}

// PhotoDetail is a read-only view of a photo within an album. Previous and Next
// are the neighbouring resource references in display order, filled only by
// single-photo lookups.
// swagger:model PhotoDetail
type PhotoDetail struct {
	ResourceRef string `json:"resource_ref"`
	DisplayName string `json:"display_name"`
	Tags        []Tag  `json:"tags"`
	Position    int    `json:"position"`
	Previous    string `json:"previous,omitempty"`
	Next        string `json:"next,omitempty"`
}

// NewPhotoDetail snapshots p at the given display position.
func NewPhotoDetail(p *Photo, position int) PhotoDetail {
	return PhotoDetail{
		ResourceRef: p.ResourceRef(),
		DisplayName: p.DisplayName(),
		Tags:        p.Tags(),
		Position:    position,
	}
}

// SearchHit is one search result: the matched photo and the album it was
// found in.
// swagger:model SearchHit
type SearchHit struct {
	AlbumName string      `json:"album_name"`
	Photo     PhotoDetail `json:"photo"`
}

// CatalogService owns the session catalog. Implementations serialize access
// to it and only hand out snapshots.
type CatalogService interface {
	Reload(ctx context.Context) error
	Save(ctx context.Context) error

	ListAlbums(ctx context.Context, page PaginationParams) ([]AlbumSummary, int, error)
	GetAlbum(ctx context.Context, name string) (*AlbumSummary, error)
	CreateAlbum(ctx context.Context, name string) (*AlbumSummary, error)
	RenameAlbum(ctx context.Context, name, newName string) (*AlbumSummary, error)
	DeleteAlbum(ctx context.Context, name string) error

	ListPhotos(ctx context.Context, album string) ([]PhotoDetail, error)
	GetPhoto(ctx context.Context, album, ref string) (*PhotoDetail, error)
	AddPhoto(ctx context.Context, album, ref, displayName string) (bool, error)
	RemovePhoto(ctx context.Context, album, ref string) (bool, error)
	MovePhoto(ctx context.Context, ref, from, to string) (bool, error)
	PhotoContent(ctx context.Context, album, ref string) (*Resource, error)

	AddTag(ctx context.Context, album, ref, category, value string) (bool, error)
	RemoveTag(ctx context.Context, album, ref, category, value string) (bool, error)

	Search(ctx context.Context, mode MatchMode, criteria []Criterion) ([]SearchHit, error)
}
