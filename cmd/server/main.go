package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"photocatalog/config"
	_ "photocatalog/docs"
	"photocatalog/internal/adapters/auth"
	"photocatalog/internal/adapters/resource"
	"photocatalog/internal/delivery/http/controllers"
	"photocatalog/internal/delivery/http/middleware"
	"photocatalog/internal/domain"
	"photocatalog/internal/repository"
	"photocatalog/internal/repository/badger"
	"photocatalog/internal/repository/file"
	"photocatalog/internal/repository/postgres"
	"photocatalog/internal/repository/s3"
	"photocatalog/internal/repository/sqlite"
	"photocatalog/internal/services"

	delivery "photocatalog/internal/delivery/http"
)

// @title						Photo Catalog API
// @version					1.0
// @description				Albums of tagged photo references, persisted as one catalog record, with tag search.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and a catalog write token.
func main() {
	issueFor := flag.String("issue-token", "", "print a write token for the given client id and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of tokens printed by -issue-token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if *issueFor != "" {
		if cfg.APITokenSecret == "" {
			logger.Error("API_TOKEN_SECRET is required to issue tokens")
			os.Exit(1)
		}
		token, err := auth.NewJWTIssuer(cfg.APITokenSecret).Issue(*issueFor, *tokenTTL)
		if err != nil {
			logger.Error("issue token", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	store, closer, err := openSlotStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("close catalog store", "error", err)
		}
	}()
	logger.Info("catalog store ready", "backend", cfg.Backend, "slot", cfg.Slot)

	gateway := repository.NewCatalogGateway(store, cfg.Slot, logger)
	svc := services.NewCatalogService(gateway, newResolver(cfg), logger, cfg.Autosave, cfg.ContextTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var verifier domain.TokenVerifier
	if cfg.APITokenSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.APITokenSecret)
	} else {
		logger.Warn("API_TOKEN_SECRET not set, catalog writes are unauthenticated")
	}

	mux := delivery.NewRouter(
		controllers.NewAlbumController(logger, svc),
		controllers.NewPhotoController(logger, svc),
		controllers.NewSearchController(logger, svc),
		controllers.NewCatalogController(logger, svc),
		middleware.RequireAuth(verifier, logger),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	if err := svc.Save(shutdownCtx); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	logger.Info("catalog saved", "slot", cfg.Slot)
	return nil
}

// openSlotStore builds the configured backend. The returned closer releases
// whatever handle the backend holds.
func openSlotStore(cfg *config.Config) (domain.SlotStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSlotStore(db), db, nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ContextTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		repo := postgres.NewSlotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db, nil
	case config.BackendBadger:
		store, err := badger.Open(filepath.Join(cfg.DataDir, "badger"))
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.BackendS3:
		client := s3.NewClient(s3.Config{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		return s3.NewSlotStore(client, cfg.S3.Bucket), noopCloser{}, nil
	default:
		store, err := file.OpenDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, noopCloser{}, nil
	}
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

func newResolver(cfg *config.Config) domain.ResourceResolver {
	resolver := &resource.SchemeResolver{Local: resource.NewDirResolver(cfg.MediaDir)}
	if cfg.MediaAllowRemote {
		resolver.Remote = resource.NewHTTPResolver(nil)
	}
	return resolver
}
