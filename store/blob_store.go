// api/store/blob_store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("store: key not found")
	// ErrQuotaExceeded is returned by Put when the value is larger than the quota.
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

// BlobStore keeps one opaque value per key, the way browser local storage does.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// MemoryStore is a process-local BlobStore.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

type quotaStore struct {
	BlobStore
	limit int64
}

// WithQuota rejects writes larger than limit bytes. A limit <= 0 disables the check.
func WithQuota(s BlobStore, limit int64) BlobStore {
	if limit <= 0 {
		return s
	}
	return &quotaStore{BlobStore: s, limit: limit}
}

func (q *quotaStore) Put(ctx context.Context, key string, value []byte) error {
	if int64(len(value)) > q.limit {
		return fmt.Errorf("writing %d bytes under %q (limit %d): %w", len(value), key, q.limit, ErrQuotaExceeded)
	}
	return q.BlobStore.Put(ctx, key, value)
}
