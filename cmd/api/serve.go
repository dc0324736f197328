package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/config"
	"github.com/t1tu5x/project-golan/internal/logging"
	"github.com/t1tu5x/project-golan/internal/menu"
	"github.com/t1tu5x/project-golan/internal/planner"
	"github.com/t1tu5x/project-golan/internal/router"
	"github.com/t1tu5x/project-golan/internal/session"
)

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	source, closeSource, err := buildSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("catalog source: %w", err)
	}
	defer closeSource()

	layout, err := planner.DefaultLayout()
	if err != nil {
		return err
	}

	loader := catalog.NewLoader(source, logger.Named("catalog"))
	newCatalog := func() *catalog.Cache { return catalog.NewCache(loader) }
	if cfg.SharedCatalogCache {
		shared := catalog.NewCache(loader)
		if err := shared.Preload(ctx, layout.Groups()); err != nil {
			return err
		}
		newCatalog = func() *catalog.Cache { return shared }
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	store := session.NewStore(newCatalog, cfg.SessionTTL)
	tokens, err := session.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	// ───────────────────────── HTTP ─────────────────────────
	r, err := router.NewRouter(router.Deps{
		Handler:       menu.NewHandler(planner.NewService(layout), logger.Named("menu")),
		Store:         store,
		Tokens:        tokens,
		Logger:        logger.Named("http"),
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.IsProduction(),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("menu planner running",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.Bool("shared_catalog_cache", cfg.SharedCatalogCache),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
	return nil
}
