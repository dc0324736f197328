package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads <dir>/<group>.csv from the local filesystem.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Locate(group string) string {
	return filepath.Join(s.dir, group+".csv")
}

func (s *FileSource) Fetch(ctx context.Context, group string) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Locate(group)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
