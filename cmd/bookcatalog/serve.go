package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/ingest"
	"bookcatalog/internal/platform/openlibrary"
	"bookcatalog/internal/simulation"
	"bookcatalog/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"
)

func runServe(cctx *cli.Context) error {
	cfg := config.Load()
	if addr := cctx.String("addr"); addr != "" {
		cfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bookCatalog := catalog.New()
	if cfg.DatabaseDSN != "" {
		if err := loadFromDB(ctx, bookCatalog, cfg.DatabaseDSN); err != nil {
			return err
		}
	}
	if n := cctx.Int("fake-books"); n > 0 {
		added, err := simulation.Seed(bookCatalog, n, seedFlag(cctx))
		if err != nil {
			return err
		}
		log.Printf("seeded %d generated books", added)
	}

	if len(cfg.OpenLibrarySubjects) > 0 {
		importFromOpenLibrary(ctx, bookCatalog, cfg)
	}

	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set; mutating routes are unauthenticated")
	}

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	router := apphttp.NewRouter(bookCatalog, apphttp.RouterConfig{
		JWTSecret:    cfg.JWTSecret,
		RateLimiter:  limiter,
		CORSOrigins:  cfg.CORSOrigins,
		EnableHSTS:   cfg.EnableHSTS,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s with %d books", cfg.Addr, bookCatalog.Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func loadFromDB(ctx context.Context, c *catalog.Catalog, dsn string) error {
	dbPool, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	n, err := store.NewBookPG(dbPool).Load(ctx, c)
	if err != nil {
		return fmt.Errorf("load catalog from database: %w", err)
	}
	log.Printf("loaded %d books from database", n)
	return nil
}

// importFromOpenLibrary is best effort; the server starts with whatever was
// added before a failure.
func importFromOpenLibrary(ctx context.Context, c *catalog.Catalog, cfg config.Config) {
	client := openlibrary.NewClient("bookcatalog/1.0", cfg.OpenLibraryRPS, 3)
	svc := ingest.NewService(client, c, ingest.Config{
		BooksMax: cfg.OpenLibraryBooksMax,
		Subjects: cfg.OpenLibrarySubjects,
	})
	run, err := svc.Run(ctx)
	if err != nil {
		log.Printf("open library import %s: %v", run.Status, err)
		return
	}
	log.Printf("open library import %s: added %d books", run.Status, run.BooksAdded)
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
