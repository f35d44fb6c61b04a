// Package gcs implements the artifact store on a Google Cloud Storage bucket.
package gcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	portsstorage "github.com/safa-edu/branch_transfer_app/internal/core/ports/storage"
)

// uploadTimeout bounds a single artifact write so a stalled upload surfaces
// as an error instead of hanging the request.
const uploadTimeout = 2 * time.Minute

// ArtifactStore stores report artifacts as objects in one bucket. Writes
// overwrite in place: GCS object uploads replace prior generations, which is
// exactly the idempotent behavior the report pipeline relies on.
type ArtifactStore struct {
	client *storage.Client
	bucket string
}

// NewArtifactStore creates an ArtifactStore on the given bucket. It assumes
// Application Default Credentials are configured.
func NewArtifactStore(ctx context.Context, bucket string) (*ArtifactStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name cannot be empty")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &ArtifactStore{client: client, bucket: bucket}, nil
}

// Ensure ArtifactStore implements the port
var _ portsstorage.ArtifactStore = (*ArtifactStore)(nil)

// Put uploads an object under key, replacing any prior object at that key.
func (s *ArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return apperrors.NewAppError(500, "failed to write artifact "+key, err)
	}

	// Close finalizes the upload; the object is not visible until it returns.
	if err := w.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to finalize artifact upload "+key, err)
	}

	return nil
}

// Get downloads the object bytes for key.
func (s *ArtifactStore) Get(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("reading artifact %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading artifact bytes %s: %w", key, err)
	}
	return data, nil
}

// Close releases the underlying client.
func (s *ArtifactStore) Close() error {
	return s.client.Close()
}
