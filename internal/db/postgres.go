package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectPostgres opens the pool backing the read-only catalog source.
func ConnectPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	logger.Info("connected to postgres", zap.String("host", config.ConnConfig.Host))

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return db, nil
}

// initSchema makes sure the catalog table exists. Rows are maintained outside this
// service.
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// CATALOG DISHES
	// -------------------------------
	catalogSQL := `
		CREATE TABLE IF NOT EXISTS catalog_dishes (
			group_key VARCHAR(100) NOT NULL,
			position INT NOT NULL DEFAULT 0,
			id VARCHAR(100) NOT NULL,
			dish_name_hebrew TEXT,
			ingredients TEXT,
			gross_yield_per_person TEXT,
			gross_yield_per_gn1_1 TEXT,
			preparation_method TEXT,
			notes TEXT,
			PRIMARY KEY (group_key, id)
		)
	`
	if _, err := db.Exec(ctx, catalogSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS catalog_dishes_group_position
		ON catalog_dishes (group_key, position)
	`
	_, err := db.Exec(ctx, indexSQL)
	return err
}
