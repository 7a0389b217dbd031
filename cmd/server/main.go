package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"Atelier/internal/api/middleware"
	"Atelier/internal/api/routes"
	"Atelier/internal/config"
	"Atelier/internal/core/media"
	"Atelier/internal/core/posts"
	"Atelier/internal/core/sessions"
	memoryRepo "Atelier/internal/db/memory"
	postgresRepo "Atelier/internal/db/postgres"
	sqliteRepo "Atelier/internal/db/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gate := sessions.NewGate(cfg.AdminToken)

	sessionManager, err := sessions.NewManager(gate, cfg.SessionCookieSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize session manager:", err)
	}

	repo, db, err := openRepository(cfg)
	if err != nil {
		log.Fatal("Failed to open post store:", err)
	}
	if db != nil {
		defer db.Close()
	}

	mediaStore, err := media.NewStoreFromConfig(context.Background(), cfg.Media)
	if err != nil {
		log.Fatal("Failed to initialize media store:", err)
	}

	postService := posts.NewPostService(repo, gate, mediaStore)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	r.Use(rateLimiter.Middleware)

	adminAuth := middleware.NewAdminAuthMiddleware(gate)

	routes.RegisterPostRoutes(r, postService, adminAuth)
	routes.RegisterSessionRoutes(r, sessionManager)

	if fs, ok := mediaStore.(*media.FileSystemStore); ok {
		routes.RegisterMediaRoutes(r, fs.Root())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Atelier starting on port %s (store: %s, media: %s)\n",
		cfg.Port, cfg.DBDriver, cfg.Media.Type)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// openRepository opens the configured post store backend and runs its
// migrations. The returned *sql.DB is nil for the memory backend.
func openRepository(cfg *config.Config) (posts.Repository, *sql.DB, error) {
	switch cfg.DBDriver {
	case "memory":
		return memoryRepo.NewPostRepository(), nil, nil

	case "postgres", "sqlite3":
		dsn := cfg.DatabaseURL
		if cfg.DBDriver == "sqlite3" {
			dsn = cfg.SQLitePath
		}

		db, err := sql.Open(cfg.DBDriver, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		if err := goose.SetDialect(cfg.DBDriver); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
		}
		if err := goose.Up(db, cfg.MigrationsDir()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		log.Println("Migrations completed successfully")

		if cfg.DBDriver == "sqlite3" {
			return sqliteRepo.NewPostRepository(db), db, nil
		}
		return postgresRepo.NewPostRepository(db), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
