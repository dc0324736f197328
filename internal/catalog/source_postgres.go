package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the Postgres source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads a group from the catalog_dishes table. The table is only ever
// queried, never written.
type PostgresSource struct {
	db Querier
}

func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Locate(group string) string {
	return fmt.Sprintf("catalog_dishes[group_key=%s]", group)
}

// --------------------------------------------------
// Every column of the table becomes a sheet column so the
// same schema check applies as for files.
// --------------------------------------------------
func (s *PostgresSource) Fetch(ctx context.Context, group string) (*Sheet, error) {
	rows, err := s.db.Query(ctx, `
		SELECT *
		FROM catalog_dishes
		WHERE group_key = $1
		ORDER BY position, id
	`, group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	sheet := &Sheet{Header: make([]string, len(fields))}
	for i, fd := range fields {
		sheet.Header[i] = fd.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record := make([]string, len(values))
		for i, v := range values {
			if v != nil {
				record[i] = fmt.Sprint(v)
			}
		}
		sheet.Records = append(sheet.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(sheet.Records) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Locate(group), ErrNotFound)
	}
	return sheet, nil
}
