package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// R2Options carries the bucket credentials; the caller reads them from config.
type R2Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// ObjectAPI is the part of the S3 client used for reading catalog objects.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type R2Client struct {
	client ObjectAPI
	bucket string
}

func NewR2Client(ctx context.Context, opts R2Options) (*R2Client, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				opts.AccessKey,
				opts.SecretKey,
				"",
			),
		),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           opts.Endpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return NewR2ClientWithAPI(s3.NewFromConfig(cfg), opts.Bucket), nil
}

func NewR2ClientWithAPI(api ObjectAPI, bucket string) *R2Client {
	return &R2Client{client: api, bucket: bucket}
}

// Open streams an object. A missing key comes back wrapped around fs.ErrNotExist.
func (r *R2Client) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%s: %w", r.Describe(key), fs.ErrNotExist)
		}
		return nil, fmt.Errorf("get %s: %w", r.Describe(key), err)
	}
	return out.Body, nil
}

func (r *R2Client) Describe(key string) string {
	return fmt.Sprintf("r2://%s/%s", r.bucket, key)
}
