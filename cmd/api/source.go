package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/config"
	"github.com/t1tu5x/project-golan/internal/db"
	"github.com/t1tu5x/project-golan/internal/storage"
)

// buildSource picks the catalog backend named by CATALOG_SOURCE. The returned func
// releases whatever connection the backend holds.
func buildSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (catalog.Source, func(), error) {
	switch cfg.CatalogSource {
	case config.SourceFile:
		return catalog.NewFileSource(cfg.DataDir), func() {}, nil

	case config.SourceR2:
		client, err := storage.NewR2Client(ctx, storage.R2Options{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("R2 init failed: %w", err)
		}
		return catalog.NewObjectSource(client, cfg.R2Prefix), func() {}, nil

	case config.SourcePostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPostgresSource(pool), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
}
