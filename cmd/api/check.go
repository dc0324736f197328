package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/config"
	"github.com/t1tu5x/project-golan/internal/logging"
	"github.com/t1tu5x/project-golan/internal/planner"
)

func runCheck(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return err
	}
	defer logger.Sync()

	source, closeSource, err := buildSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("catalog source: %w", err)
	}
	defer closeSource()

	layout, err := planner.DefaultLayout()
	if err != nil {
		return err
	}

	return checkCatalog(ctx, catalog.NewLoader(source, zap.NewNop()), layout, out)
}

// checkCatalog prints one line per group and fails when any group has a notice.
func checkCatalog(ctx context.Context, loader *catalog.Loader, layout *planner.Layout, out io.Writer) error {
	problems := 0
	for _, group := range layout.Groups() {
		table, notice := loader.Load(ctx, group)
		if notice != nil {
			problems++
			fmt.Fprintf(out, "%-20s %s: %s\n", group, notice.Level, notice.Message)
			continue
		}
		fmt.Fprintf(out, "%-20s ok: %d dishes\n", group, table.Len())
	}

	if problems > 0 {
		return fmt.Errorf("%d of %d groups failed to load", problems, len(layout.Groups()))
	}
	return nil
}
