package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Loader turns a Source sheet into a validated GroupTable. It never fails: every
// problem degrades to EmptyTable plus a Notice for the user.
type Loader struct {
	source Source
	logger *zap.Logger
}

func NewLoader(source Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, logger: logger}
}

func (l *Loader) Load(ctx context.Context, group string) (*GroupTable, *Notice) {
	location := l.source.Locate(group)
	log := l.logger.With(zap.String("group", group), zap.String("location", location))

	sheet, err := l.source.Fetch(ctx, group)
	if err != nil {
		if isNotFound(err) {
			log.Warn("catalog file not found")
			return EmptyTable(group), &Notice{
				Level:   LevelWarning,
				Group:   group,
				Message: fmt.Sprintf("Файл не найден: %s", location),
			}
		}
		log.Error("catalog file unreadable", zap.Error(err))
		return EmptyTable(group), &Notice{
			Level:   LevelError,
			Group:   group,
			Message: fmt.Sprintf("Не удалось прочитать %s: %v", location, err),
		}
	}

	missing := missingColumns(sheet.Header)
	if len(missing) > 0 {
		log.Error("catalog file is missing required columns", zap.Strings("missing", missing))
		return EmptyTable(group), &Notice{
			Level:   LevelError,
			Group:   group,
			Message: fmt.Sprintf("В файле %s отсутствуют колонки: [%s]", location, quoteJoin(missing)),
		}
	}

	table := buildTable(group, sheet)
	log.Debug("catalog loaded", zap.Int("rows", table.Len()))
	return table, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// buildTable maps a validated sheet onto DishRecords. When a header repeats a
// column, its first occurrence is used.
func buildTable(group string, sheet *Sheet) *GroupTable {
	index := make(map[string]int, len(sheet.Header))
	for i, h := range sheet.Header {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	columns := make([]string, len(sheet.Header))
	copy(columns, sheet.Header)

	table := &GroupTable{
		Group:   group,
		Columns: columns,
		Rows:    make([]DishRecord, 0, len(sheet.Records)),
	}

	for _, record := range sheet.Records {
		cell := func(column string) string {
			i := index[column]
			if i < len(record) {
				return record[i]
			}
			return ""
		}

		row := DishRecord{
			ID:                cell(ColumnID),
			Name:              cell(ColumnName),
			Ingredients:       cell(ColumnIngredients),
			YieldPerPerson:    cell(ColumnYieldPerPerson),
			YieldPerTray:      cell(ColumnYieldPerTray),
			PreparationMethod: cell(ColumnPreparationMethod),
			Notes:             cell(ColumnNotes),
		}

		for i, h := range sheet.Header {
			if isRequired(h) || index[h] != i {
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			if i < len(record) {
				row.Extra[h] = record[i]
			}
		}

		table.Rows = append(table.Rows, row)
	}

	return table
}

func isRequired(column string) bool {
	for _, c := range RequiredColumns {
		if c == column {
			return true
		}
	}
	return false
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
