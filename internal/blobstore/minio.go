package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/XEXEU22/volleyapp/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Minio implements Store against any S3-compatible endpoint.
type Minio struct {
	log    *zap.SugaredLogger
	client *minio.Client
	cfg    config.BlobConfig
}

func newMinio(log *zap.SugaredLogger, cfg config.BlobConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &Minio{
		log:    log.Named("blob.minio"),
		client: client,
		cfg:    cfg,
	}, nil
}

// OnStart ensures the avatar bucket exists.
func (m *Minio) OnStart(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket: %w", err)
		}
	}

	m.log.Infow("blob store ready", "endpoint", m.cfg.Endpoint, "bucket", m.cfg.Bucket)
	return nil
}

// Upload stores an object at the given path.
func (m *Minio) Upload(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.cfg.Bucket, objectPath, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.log.Errorw("failed to upload object", "error", err, "path", objectPath)
		return fmt.Errorf("put object: %w", err)
	}

	m.log.Infow("object uploaded", "path", objectPath, "size", size)
	return nil
}

// PublicURL returns the public address of an uploaded object.
func (m *Minio) PublicURL(objectPath string) string {
	base := strings.TrimSuffix(m.cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if m.cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, m.cfg.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", base, m.cfg.Bucket, objectPath)
}
