package storage

import (
	"context"
	"sync"
)

// MemoryUploader keeps objects in a map. Used in tests and when no
// bucket is configured.
type MemoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{objects: make(map[string][]byte)}
}

func (u *MemoryUploader) Upload(
	_ context.Context,
	key string,
	body []byte,
	_ string,
) (string, error) {

	u.mu.Lock()
	defer u.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)
	u.objects[key] = stored

	return "memory://" + key, nil
}

func (u *MemoryUploader) Object(key string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	b, ok := u.objects[key]
	return b, ok
}

var _ Uploader = (*MemoryUploader)(nil)
