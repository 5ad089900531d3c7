package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"tradesafe/internal/adapters/browserless"
	httpadapter "tradesafe/internal/adapters/http"
	"tradesafe/internal/adapters/objstore"
	pg "tradesafe/internal/adapters/postgres"
	"tradesafe/internal/config"
	docsvc "tradesafe/internal/services/documents"
	"tradesafe/internal/workers/docrunner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}
	if cfg.RendererToken == "" {
		log.Printf("warning: RENDERER_TOKEN not set; document generation will fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	renderer := browserless.New(cfg.RendererURL, cfg.RendererToken)
	store := objstore.New(cfg.StorageURL, cfg.StorageToken, cfg.StorageBucket)
	docs := docsvc.New(db, db, renderer, store)

	srv := httpadapter.New(docs, db)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background generation workers
	if cfg.DocWorkers > 0 {
		go docrunner.Run(ctx, db, docs, cfg.DocWorkers, 500*time.Millisecond)
		log.Printf("document workers started: %d", cfg.DocWorkers)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
