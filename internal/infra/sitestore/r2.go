package sitestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
)

const (
	codeNoSuchKey   = "NoSuchKey"
	codeBucketOwned = "BucketAlreadyOwnedByYou"
)

// R2Options configures the Cloudflare R2 adapter.
type R2Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// R2Storage stores published sites in Cloudflare R2 via the S3-compatible API.
type R2Storage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger

	bucketMu    sync.Mutex
	bucketReady bool
}

// NewR2Storage constructs the storage adapter.
func NewR2Storage(opts R2Options, logger *slog.Logger) (*R2Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	useSSL := opts.UseSSL
	lower := strings.ToLower(strings.TrimSpace(opts.Endpoint))
	switch {
	case strings.HasPrefix(lower, "https://"):
		useSSL = true
	case strings.HasPrefix(lower, "http://"):
		useSSL = false
	}
	client, err := minio.New(sanitizeEndpoint(opts.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       useSSL,
		Region:       opts.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init r2 client: %w", err)
	}
	return &R2Storage{
		client: client,
		bucket: opts.Bucket,
		logger: logger.With("component", "sitestore.r2"),
	}, nil
}

// ensureBucket checks the bucket until one attempt succeeds. Failures are not cached.
func (s *R2Storage) ensureBucket(ctx context.Context) error {
	s.bucketMu.Lock()
	defer s.bucketMu.Unlock()
	if s.bucketReady {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil && minio.ToErrorResponse(err).Code != codeBucketOwned {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	s.bucketReady = true
	s.logger.Info("bucket ready", "bucket", s.bucket)
	return nil
}

// Put uploads a published file to R2.
func (s *R2Storage) Put(ctx context.Context, key string, data []byte, mimeType string) (sitegen.StoredObject, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return sitegen.StoredObject{}, fmt.Errorf("ensure bucket: %w", err)
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: true,
	})
	if err != nil {
		return sitegen.StoredObject{}, fmt.Errorf("put object %s: %w", key, err)
	}
	return sitegen.StoredObject{
		Key:      key,
		Size:     info.Size,
		MimeType: mimeType,
		ETag:     info.ETag,
	}, nil
}

// Get fetches an object for reading.
func (s *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, statErr := obj.Stat(); statErr != nil {
		_ = obj.Close()
		return nil, translateError(statErr)
	}
	return obj, nil
}

// Delete removes an object. Missing keys are not an error.
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

var _ sitegen.ObjectStorage = (*R2Storage)(nil)

func translateError(err error) error {
	if minio.ToErrorResponse(err).Code == codeNoSuchKey {
		return fmt.Errorf("%w: %v", sitegen.ErrObjectNotFound, err)
	}
	return err
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
