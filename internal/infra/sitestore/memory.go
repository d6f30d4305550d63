package sitestore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"slices"
	"sync"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
)

// MemoryStorage keeps published files in process memory. Useful for tests and local dev.
// When maxObjects is positive the oldest objects are evicted once the cap is reached.
type MemoryStorage struct {
	mu         sync.RWMutex
	blobs      map[string]storedBlob
	order      []string
	maxObjects int
}

type storedBlob struct {
	data     []byte
	mimeType string
	etag     string
}

// NewMemoryStorage constructs storage holding at most maxObjects blobs. Zero means unbounded.
func NewMemoryStorage(maxObjects int) *MemoryStorage {
	if maxObjects < 0 {
		maxObjects = 0
	}
	return &MemoryStorage{blobs: make(map[string]storedBlob), maxObjects: maxObjects}
}

// Put stores a copy of the blob and returns metadata.
func (s *MemoryStorage) Put(_ context.Context, key string, data []byte, mimeType string) (sitegen.StoredObject, error) {
	hash := md5.Sum(data)
	etag := hex.EncodeToString(hash[:])
	blob := storedBlob{data: bytes.Clone(data), mimeType: mimeType, etag: etag}

	s.mu.Lock()
	if _, exists := s.blobs[key]; !exists {
		s.order = append(s.order, key)
	}
	s.blobs[key] = blob
	for s.maxObjects > 0 && len(s.order) > s.maxObjects {
		delete(s.blobs, s.order[0])
		s.order = s.order[1:]
	}
	s.mu.Unlock()

	return sitegen.StoredObject{
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
		ETag:     etag,
	}, nil
}

// Get returns a reader for the stored blob.
func (s *MemoryStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, sitegen.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(blob.data)), nil
}

// Delete drops a blob if present.
func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; !ok {
		return nil
	}
	delete(s.blobs, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
	return nil
}

// Len reports how many blobs are held.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

var _ sitegen.ObjectStorage = (*MemoryStorage)(nil)
