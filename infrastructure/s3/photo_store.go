// Package s3 stores profile photos in an S3 compatible bucket, MinIO included.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"swipe-lab/domain/mimetypes"
	errs "swipe-lab/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const photoPrefix = "user_photos/"

type Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

// PhotoStore keeps photos under user_photos/{uuid}.{ext}.
type PhotoStore struct {
	client *s3.Client
	bucket string
	log    *slog.Logger
}

// NewPhotoStore builds a client from the default AWS chain. Static keys and
// a custom endpoint, both optional, are what a MinIO deployment needs.
func NewPhotoStore(ctx context.Context, opts Options, log *slog.Logger) (*PhotoStore, error) {
	loaders := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})
	return NewPhotoStoreFromClient(client, opts.Bucket, log), nil
}

func NewPhotoStoreFromClient(client *s3.Client, bucket string, log *slog.Logger) *PhotoStore {
	return &PhotoStore{client: client, bucket: bucket, log: log}
}

func (s *PhotoStore) Fetch(ctx context.Context, ref string) ([]byte, error) {
	key := s.ObjectKey(ref)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s", errs.ErrPhotoNotFound, ref)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (s *PhotoStore) Put(ctx context.Context, data []byte) (string, error) {
	mime, ext, err := mimetypes.DetectPhoto(data)
	if err != nil {
		return "", err
	}
	key := photoPrefix + uuid.NewString() + ext
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(string(mime)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}
	s.log.Debug("Photo uploaded", "bucket", s.bucket, "key", key, "size", len(data))
	return key, nil
}

// ObjectKey accepts a bare key or a public URL of the form
// http://host/{bucket}/{key} and returns the key.
func (s *PhotoStore) ObjectKey(ref string) string {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return strings.TrimPrefix(ref, "/")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	path := strings.TrimPrefix(u.Path, "/")
	if rest, ok := strings.CutPrefix(path, s.bucket+"/"); ok {
		return rest
	}
	return path
}
