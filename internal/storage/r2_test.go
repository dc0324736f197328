package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string]string
	err     error
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestR2Client_Open(t *testing.T) {
	client := NewR2ClientWithAPI(&fakeObjects{
		objects: map[string]string{"menus/catalog/soups.csv": "id\n1\n"},
	}, "menus")

	body, err := client.Open(context.Background(), "catalog/soups.csv")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "id\n1\n", string(data))
}

func TestR2Client_MissingKey(t *testing.T) {
	client := NewR2ClientWithAPI(&fakeObjects{}, "menus")

	_, err := client.Open(context.Background(), "catalog/soups.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "r2://menus/catalog/soups.csv")
}

func TestR2Client_OtherError(t *testing.T) {
	client := NewR2ClientWithAPI(&fakeObjects{err: errors.New("access denied")}, "menus")

	_, err := client.Open(context.Background(), "catalog/soups.csv")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}
