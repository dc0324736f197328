package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ErrNotFound marks a group whose backing file, object or table does not exist.
var ErrNotFound = errors.New("catalog source not found")

// Sheet is raw tabular data: a header row and the records below it.
type Sheet struct {
	Header  []string
	Records [][]string
}

// Source fetches the raw sheet behind a group identifier.
type Source interface {
	Fetch(ctx context.Context, group string) (*Sheet, error)
	// Locate describes where the group is read from, for user-facing messages.
	Locate(group string) string
}

// isNotFound treats missing files and objects the same way.
func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// ReadCSV parses a comma separated sheet with a header row. A UTF-8 BOM in front of
// the header is dropped and rows shorter than the header are padded with empty cells.
func ReadCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	sheet := &Sheet{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(sheet.Records)+1, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", len(sheet.Records)+1, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		sheet.Records = append(sheet.Records, record)
	}

	return sheet, nil
}
