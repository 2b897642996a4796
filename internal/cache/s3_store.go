package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config configures an S3Store.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every object name.
	Prefix string
	UseSSL bool
}

// S3Store keeps entries as objects in an S3-compatible bucket. Keys are
// file-style paths; they are turned into slash-separated object names.
type S3Store struct {
	client   *minio.Client
	bucket   string
	region   string
	prefix   string
	initOnce sync.Once
	initErr  error
}

// NewS3Store creates a client for the configured endpoint. The bucket is
// created lazily on first use.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("s3 endpoint is required")
	}

	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)

	if access == "" || secret == "" {
		return nil, errors.New("s3 access key and secret key are required")
	}

	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err

			return
		}

		if exists {
			return
		}

		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})

	if s.initErr != nil {
		return fmt.Errorf("%w: ensure bucket %s: %w", ErrStorage, s.bucket, s.initErr)
	}

	return nil
}

func (s *S3Store) Has(ctx context.Context, key string) (bool, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return false, err
	}

	name := objectName(s.prefix, key)

	_, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if isMissing(err) {
			return false, nil
		}

		return false, fmt.Errorf("%w: stat %s: %w", ErrStorage, name, err)
	}

	return true, nil
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	name := objectName(s.prefix, key)

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrStorage, name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}

		return nil, fmt.Errorf("%w: read %s: %w", ErrStorage, name, err)
	}

	return data, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	name := objectName(s.prefix, key)

	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType(name),
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrStorage, name, err)
	}

	return nil
}

func isMissing(err error) bool {
	code := minio.ToErrorResponse(err).Code

	return code == "NoSuchKey" || code == "NoSuchBucket"
}

// objectName maps a file-style key such as "./src/countrycode.org/x.csv"
// to "prefix/src/countrycode.org/x.csv".
func objectName(prefix, key string) string {
	name := path.Clean("/" + filepath.ToSlash(strings.TrimSpace(key)))
	name = strings.TrimPrefix(name, "/")

	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
