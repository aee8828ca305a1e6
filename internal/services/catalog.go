package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"photocatalog/internal/domain"
	"photocatalog/internal/search"
)

type catalogService struct {
	mu             sync.Mutex
	catalog        *domain.Catalog
	gateway        domain.CatalogGateway
	resolver       domain.ResourceResolver
	logger         *slog.Logger
	autosave       bool
	contextTimeout time.Duration
}

// NewCatalogService returns a service holding an empty catalog; call Reload
// to read the persisted one. With autosave, every successful mutation is
// written through the gateway before the call returns.
func NewCatalogService(gateway domain.CatalogGateway,
	resolver domain.ResourceResolver,
	logger *slog.Logger,
	autosave bool,
	timeout time.Duration,
) domain.CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogService{
		catalog:        domain.NewCatalog(),
		gateway:        gateway,
		resolver:       resolver,
		logger:         logger,
		autosave:       autosave,
		contextTimeout: timeout,
	}
}

func (s *catalogService) Reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	catalog := s.gateway.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.logger.InfoContext(ctx, "catalog loaded", "albums", catalog.Len(), "photos", catalog.PhotoCount())
	return nil
}

func (s *catalogService) Save(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gateway.Save(ctx, s.catalog); err != nil {
		s.logger.ErrorContext(ctx, "catalog save failed", "err", err)
		return err
	}
	s.logger.InfoContext(ctx, "catalog saved", "albums", s.catalog.Len())
	return nil
}

func (s *catalogService) ListAlbums(ctx context.Context, page domain.PaginationParams) ([]domain.AlbumSummary, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	albums := s.catalog.Albums()
	start, end := page.Window(len(albums))
	out := make([]domain.AlbumSummary, 0, end-start)
	for _, a := range albums[start:end] {
		out = append(out, domain.NewAlbumSummary(a))
	}
	return out, len(albums), nil
}

func (s *catalogService) GetAlbum(ctx context.Context, name string) (*domain.AlbumSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(name)
	if err != nil {
		return nil, err
	}
	summary := domain.NewAlbumSummary(album)
	return &summary, nil
}

func (s *catalogService) CreateAlbum(ctx context.Context, name string) (*domain.AlbumSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.catalog.CreateAlbum(name)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, "create album")
	summary := domain.NewAlbumSummary(album)
	return &summary, nil
}

func (s *catalogService) RenameAlbum(ctx context.Context, name, newName string) (*domain.AlbumSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(name)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.RenameAlbum(album, newName); err != nil {
		return nil, err
	}
	s.persist(ctx, "rename album")
	summary := domain.NewAlbumSummary(album)
	return &summary, nil
}

func (s *catalogService) DeleteAlbum(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(name)
	if err != nil {
		return err
	}
	s.catalog.RemoveAlbum(album)
	s.persist(ctx, "delete album")
	return nil
}

func (s *catalogService) ListPhotos(ctx context.Context, albumName string) ([]domain.PhotoDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(albumName)
	if err != nil {
		return nil, err
	}
	photos := album.Photos()
	out := make([]domain.PhotoDetail, 0, len(photos))
	for i, p := range photos {
		out = append(out, domain.NewPhotoDetail(p, i))
	}
	return out, nil
}

func (s *catalogService) GetPhoto(ctx context.Context, albumName, ref string) (*domain.PhotoDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, photo, err := s.findPhoto(albumName, ref)
	if err != nil {
		return nil, err
	}
	detail := domain.NewPhotoDetail(photo, album.IndexOf(ref))
	detail.Previous, detail.Next, _ = album.Neighbors(ref)
	return &detail, nil
}

func (s *catalogService) AddPhoto(ctx context.Context, albumName, ref, displayName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	photo, err := domain.NewPhoto(ref, displayName)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(albumName)
	if err != nil {
		return false, err
	}
	if !album.AddPhoto(photo) {
		return false, nil
	}
	s.persist(ctx, "add photo")
	return true, nil
}

func (s *catalogService) RemovePhoto(ctx context.Context, albumName, ref string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	album, err := s.findAlbum(albumName)
	if err != nil {
		return false, err
	}
	photo, ok := album.Photo(ref)
	if !ok || !album.RemovePhoto(photo) {
		return false, nil
	}
	s.persist(ctx, "remove photo")
	return true, nil
}

func (s *catalogService) MovePhoto(ctx context.Context, ref, from, to string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	moved, err := s.catalog.MovePhoto(ref, from, to)
	if err != nil || !moved {
		return false, err
	}
	s.persist(ctx, "move photo")
	return true, nil
}

// PhotoContent resolves the photo's resource outside the catalog lock.
func (s *catalogService) PhotoContent(ctx context.Context, albumName, ref string) (*domain.Resource, error) {
	s.mu.Lock()
	_, photo, err := s.findPhoto(albumName, ref)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if s.resolver == nil {
		return nil, fmt.Errorf("%w: no resolver configured", domain.ErrResourceUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	res, err := s.resolver.Resolve(ctx, photo.ResourceRef())
	if err != nil {
		s.logger.WarnContext(ctx, "resource unavailable", "ref", ref, "err", err)
		return nil, err
	}
	return res, nil
}

func (s *catalogService) AddTag(ctx context.Context, albumName, ref, category, value string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, photo, err := s.findPhoto(albumName, ref)
	if err != nil {
		return false, err
	}
	added, err := photo.AddTag(category, value)
	if err != nil || !added {
		return false, err
	}
	s.persist(ctx, "add tag")
	return true, nil
}

func (s *catalogService) RemoveTag(ctx context.Context, albumName, ref, category, value string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, photo, err := s.findPhoto(albumName, ref)
	if err != nil {
		return false, err
	}
	removed, err := photo.RemoveTag(category, value)
	if err != nil || !removed {
		return false, err
	}
	s.persist(ctx, "remove tag")
	return true, nil
}

func (s *catalogService) Search(ctx context.Context, mode domain.MatchMode, criteria []domain.Criterion) ([]domain.SearchHit, error) {
	q := search.NewQuery(mode)
	for _, c := range criteria {
		if err := q.AddCriterion(string(c.Category), c.Value); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := q.Run(s.catalog)
	hits := make([]domain.SearchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, domain.SearchHit{
			AlbumName: r.AlbumName,
			Photo:     domain.NewPhotoDetail(r.Photo, r.Position),
		})
	}
	return hits, nil
}

// findAlbum must be called with mu held.
func (s *catalogService) findAlbum(name string) (*domain.Album, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: album name is required", domain.ErrInvalidArgument)
	}
	album, ok := s.catalog.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("album %q: %w", name, domain.ErrNotFound)
	}
	return album, nil
}

// findPhoto must be called with mu held.
func (s *catalogService) findPhoto(albumName, ref string) (*domain.Album, *domain.Photo, error) {
	if ref == "" {
		return nil, nil, fmt.Errorf("%w: resource reference is required", domain.ErrInvalidArgument)
	}
	album, err := s.findAlbum(albumName)
	if err != nil {
		return nil, nil, err
	}
	photo, ok := album.Photo(ref)
	if !ok {
		return nil, nil, fmt.Errorf("photo %q in album %q: %w", ref, album.Name(), domain.ErrNotFound)
	}
	return album, photo, nil
}

// persist writes the catalog after a mutation when autosave is on. A failed
// write keeps the in-memory change; the next save or shutdown retries it.
// Must be called with mu held.
func (s *catalogService) persist(ctx context.Context, op string) {
	if !s.autosave {
		return
	}
	if err := s.gateway.Save(ctx, s.catalog); err != nil {
		s.logger.ErrorContext(ctx, "autosave failed", "op", op, "err", err)
		return
	}
	s.logger.DebugContext(ctx, "autosaved", "op", op)
}
