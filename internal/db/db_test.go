package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/t1tu5x/project-golan/internal/catalog"
)

func TestConnectPostgres(t *testing.T) {
	t.Run("missing DATABASE_URL is an error", func(t *testing.T) {
		_, err := ConnectPostgres(context.Background(), "", zap.NewNop())
		assert.EqualError(t, err, "DATABASE_URL not set")
	})

	t.Run("malformed DATABASE_URL is an error", func(t *testing.T) {
		_, err := ConnectPostgres(context.Background(), "postgres://%zz", zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		ctx := context.Background()
		pool, err := ConnectPostgres(ctx, dsn, zap.NewNop())
		require.NoError(t, err)
		defer pool.Close()

		_, err = pool.Exec(ctx, `DELETE FROM catalog_dishes WHERE group_key = 'it_soups'`)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `
			INSERT INTO catalog_dishes (group_key, position, id, dish_name_hebrew, notes)
			VALUES ('it_soups', 2, 'b', 'מרק ירקות', NULL),
			       ('it_soups', 1, 'a', 'מרק עוף', 'חם')
		`)
		require.NoError(t, err)
		defer pool.Exec(ctx, `DELETE FROM catalog_dishes WHERE group_key = 'it_soups'`)

		loader := catalog.NewLoader(catalog.NewPostgresSource(pool), nil)
		table, notice := loader.Load(ctx, "it_soups")
		require.Nil(t, notice)
		assert.Equal(t, []string{"מרק עוף", "מרק ירקות"}, table.Names())
		assert.Equal(t, "חם", table.Rows[0].Notes)
		assert.Equal(t, "", table.Rows[1].Notes)

		_, notice = loader.Load(ctx, "it_missing")
		require.NotNil(t, notice)
		assert.Equal(t, catalog.LevelWarning, notice.Level)
	})
}
