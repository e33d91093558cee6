package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "homeswerv/internal/adapters/http"
	pg "homeswerv/internal/adapters/postgres"
	"homeswerv/internal/metrics"
	"homeswerv/internal/ports"
	claimsvc "homeswerv/internal/services/claims"
	kanbansvc "homeswerv/internal/services/kanban"
	pagesvc "homeswerv/internal/services/pages"
	profilesvc "homeswerv/internal/services/profiles"
	"homeswerv/internal/workers/pagesync"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server and background workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; dashboard and admin requests will be rejected")
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, "up"); err != nil {
			return fmt.Errorf("migrate on start: %w", err)
		}
	}

	var writer ports.ProjectWriter = db
	if !cfg.KanbanPersist {
		writer = nil
		log.Info().Msg("Kanban moves are local only; KANBAN_PERSIST=false")
	}
	pages := pagesvc.New(db)

	srv, err := httpadapter.New(
		kanbansvc.New(db, writer),
		claimsvc.New(db, db),
		pages,
		profilesvc.New(db),
		db,
		db,
		httpadapter.Options{SiteURL: cfg.SiteURL, JWTSecret: []byte(cfg.JWTSecret)},
	)
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.ListenAddr).Msg("Listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return pagesync.Run(gctx, pages, cfg.PageSyncInterval)
	})
	if cfg.EnableSystemMetrics {
		g.Go(func() error {
			return metrics.RunSystemCollector(gctx, 15*time.Second)
		})
	}

	return g.Wait()
}
