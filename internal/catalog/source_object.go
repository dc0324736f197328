package catalog

import (
	"context"
	"io"
)

// ObjectReader opens a stored object by key. Missing keys are reported with an error
// matching fs.ErrNotExist or ErrNotFound.
type ObjectReader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Describe(key string) string
}

// ObjectSource reads <prefix><group>.csv objects from a bucket (Cloudflare R2 in
// production).
type ObjectSource struct {
	objects ObjectReader
	prefix  string
}

func NewObjectSource(objects ObjectReader, prefix string) *ObjectSource {
	return &ObjectSource{objects: objects, prefix: prefix}
}

func (s *ObjectSource) key(group string) string {
	return s.prefix + group + ".csv"
}

func (s *ObjectSource) Locate(group string) string {
	return s.objects.Describe(s.key(group))
}

func (s *ObjectSource) Fetch(ctx context.Context, group string) (*Sheet, error) {
	body, err := s.objects.Open(ctx, s.key(group))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ReadCSV(body)
}
