package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/policyscan"
)

// Ensure Sink implements policyscan.Sink at compile time.
var _ policyscan.Sink = (*Sink)(nil)

// Sink stores blobs in the blobs table. The returned reference is
// "collection/item". Putting the same key twice replaces the stored blob.
type Sink struct {
	db *DB
}

// NewSink creates a new Sink backed by the given database.
func NewSink(db *DB) *Sink {
	return &Sink{db: db}
}

// Put upserts the blob and returns its reference.
func (s *Sink) Put(ctx context.Context, collection, item string, data []byte, contentType string) (string, error) {
	if item == "" {
		return "", policyscan.Errorf(policyscan.EINVALID, "sink item key required")
	}

	const query = `
INSERT INTO blobs (collection, item, content_type, data, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (collection, item) DO UPDATE SET
	content_type = excluded.content_type,
	data = excluded.data,
	created_at = excluded.created_at`

	createdAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.db.ExecContext(ctx, query, collection, item, contentType, data, createdAt); err != nil {
		return "", err
	}

	return collection + "/" + item, nil
}
