// Package objstore constructs the S3-compatible client used as a note source.
package objstore

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"hairnote/internal/platform/config"
)

// New creates a minio client from the provided configuration.
// Returns nil if no endpoint is configured.
func New(cfg config.BucketConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return client, nil
}
