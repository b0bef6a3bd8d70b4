// Package blobstore provides object storage for avatar images.
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/XEXEU22/volleyapp/config"

	"go.uber.org/zap"
)

// Store abstracts upload-by-path and public URL resolution.
type Store interface {
	OnStart(ctx context.Context) error
	Upload(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error
	PublicURL(objectPath string) string
}

// New constructs a blob store backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Store, error) {
	switch name {
	case "minio":
		return newMinio(log, cfg.Blob)
	default:
		return nil, fmt.Errorf("unknown blob backend: %s", name)
	}
}
