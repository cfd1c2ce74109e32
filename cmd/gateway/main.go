package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/brightpath-labs/pathfinder/internal/api/http"
	"github.com/brightpath-labs/pathfinder/internal/attempt"
	auth "github.com/brightpath-labs/pathfinder/internal/auth/middleware"
	"github.com/brightpath-labs/pathfinder/internal/catalog"
	"github.com/brightpath-labs/pathfinder/internal/config"
	"github.com/brightpath-labs/pathfinder/internal/db"
	"github.com/brightpath-labs/pathfinder/internal/rbac"
	"github.com/brightpath-labs/pathfinder/internal/scoring"
	syncx "github.com/brightpath-labs/pathfinder/internal/sync"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := attempt.NewSQLStore(dbh, cfg.DBDriver)
	events := syncx.NewEventRepo(dbh)

	// --- Scoring engine ---
	opts := []scoring.Option{scoring.WithMaxTiebreakRounds(cfg.MaxTiebreakRounds)}
	if cfg.ClassifierTablePath != "" {
		table, err := catalog.LoadTable(cfg.ClassifierTablePath)
		if err != nil {
			log.Fatalf("classifier table: %v", err)
		}
		opts = append(opts, scoring.WithClassifierTable(table))
	}
	eng, err := scoring.NewEngine(opts...)
	if err != nil {
		log.Fatalf("scoring engine: %v", err)
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)
	accounts := []auth.Account{
		{Username: cfg.CounselorUser, Role: "counselor", PassHash: cfg.CounselorPassHash},
		{Username: cfg.StudentUser, Role: "student", PassHash: cfg.StudentPassHash},
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, accounts))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("catalog:create")).
			Post("/catalogs", api.UploadCatalogHandler(store))
		pr.With(rbac.Require("catalog:view")).
			Get("/catalogs/{catalogID}", api.GetCatalogHandler(store))

		pr.With(rbac.Require("attempt:create")).
			Post("/attempts", api.CreateAttemptHandler(store))
		pr.With(rbac.Require("attempt:save")).
			Post("/attempts/{attemptID}/responses", api.SaveResponsesHandler(store))
		pr.With(rbac.Require("attempt:submit")).
			Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(store, eng, events))
		pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
			Get("/attempts/{attemptID}", api.GetAttemptHandler(store))

		pr.With(rbac.RequireAny("report:view-own", "report:view-all")).
			Get("/attempts/{attemptID}/report", api.GetReportHandler(store))

		pr.With(rbac.RequireAny("tiebreak:answer", "report:view-all")).
			Get("/attempts/{attemptID}/tiebreaker", api.GetTiebreakHandler(store))
		pr.With(rbac.Require("tiebreak:answer")).
			Post("/attempts/{attemptID}/tiebreaker", api.AdvanceTiebreakHandler(store, eng, events))
	})

	addr := cfg.HTTPAddr
	log.Printf("pathfinder gateway listening on %s", addr)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		log.Printf("server exit: %v", err)
		os.Exit(1)
	}
}
