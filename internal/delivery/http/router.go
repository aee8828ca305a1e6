package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"photocatalog/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards every route that changes the catalog; pass
// middleware.RequireAuth(nil, logger) to leave them open.
func NewRouter(
	albumController *controllers.AlbumController,
	photoController *controllers.PhotoController,
	searchController *controllers.SearchController,
	catalogController *controllers.CatalogController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Albums
	mux.HandleFunc("GET /albums", albumController.ListAlbums)
	mux.HandleFunc("POST /albums", requireAuth(albumController.CreateAlbum))
	mux.HandleFunc("GET /albums/{name}", albumController.GetAlbum)
	mux.HandleFunc("PATCH /albums/{name}", requireAuth(albumController.RenameAlbum))
	mux.HandleFunc("DELETE /albums/{name}", requireAuth(albumController.DeleteAlbum))

	// Photos
	mux.HandleFunc("GET /albums/{name}/photos", photoController.ListPhotos)
	mux.HandleFunc("POST /albums/{name}/photos", requireAuth(photoController.AddPhoto))
	mux.HandleFunc("DELETE /albums/{name}/photos", requireAuth(photoController.RemovePhoto))
	mux.HandleFunc("GET /albums/{name}/photos/detail", photoController.GetPhoto)
	mux.HandleFunc("GET /albums/{name}/photos/content", photoController.PhotoContent)
	mux.HandleFunc("POST /albums/{name}/photos/move", requireAuth(photoController.MovePhoto))

	// Tags
	mux.HandleFunc("POST /albums/{name}/photos/tags", requireAuth(photoController.AddTag))
	mux.HandleFunc("DELETE /albums/{name}/photos/tags", requireAuth(photoController.RemoveTag))

	// Search
	mux.HandleFunc("POST /search", searchController.Search)

	// Catalog lifecycle
	mux.HandleFunc("POST /catalog/save", requireAuth(catalogController.Save))
	mux.HandleFunc("POST /catalog/reload", requireAuth(catalogController.Reload))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
