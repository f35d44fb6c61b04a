package storage

import "context"

// ArtifactStore persists rendered report binaries under deterministic keys.
// Put has overwrite semantics: a second write to the same key replaces the
// prior object, which makes re-generation for a period idempotent at the
// storage layer.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
