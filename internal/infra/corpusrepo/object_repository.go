package corpusrepo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// ObjectConfig addresses the corpus document in an S3-compatible bucket.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Key       string
}

// ObjectRepository keeps the corpus JSON document in object storage
// (S3, R2, MinIO).
type ObjectRepository struct {
	client *minio.Client
	bucket string
	key    string
	logger *slog.Logger
}

// NewObjectRepository constructs the repository.
func NewObjectRepository(cfg ObjectConfig, logger *slog.Logger) (*ObjectRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = "faqs.json"
	}
	return &ObjectRepository{
		client: client,
		bucket: cfg.Bucket,
		key:    key,
		logger: logger.With("component", "corpusrepo.object"),
	}, nil
}

func (r *ObjectRepository) Load(ctx context.Context) ([]faq.Entry, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "get faq corpus object", err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, fmt.Sprintf("read faq corpus s3://%s/%s", r.bucket, r.key), err)
	}
	return decodeCorpus(data)
}

// Save uploads the whole document; object stores replace keys atomically.
func (r *ObjectRepository) Save(ctx context.Context, entries []faq.Entry) error {
	data, err := encodeCorpus(entries)
	if err != nil {
		return err
	}
	info, err := r.client.PutObject(ctx, r.bucket, r.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      "application/json",
		DisableMultipart: true,
	})
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "put faq corpus object", err)
	}
	r.logger.Info("faq corpus uploaded", "bucket", r.bucket, "key", r.key, "etag", info.ETag, "size", info.Size)
	return nil
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

var _ faq.CorpusRepository = (*ObjectRepository)(nil)
