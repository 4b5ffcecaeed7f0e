package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore is an in-process Store for single-instance deployments.
type MemoryStore struct {
	cache *gocache.Cache
	delMu sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	value, found := s.cache.Get(key)
	if !found {
		return nil, ErrCacheNotFound
	}

	return value.([]byte), nil
}

func (s *MemoryStore) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	s.cache.Set(key, value, ttl)
	return nil
}

// Del removes the given keys. Callers use the ErrCacheNotFound result to
// treat deletion as an atomic consume, so the check and delete are done
// under a single lock.
func (s *MemoryStore) Del(keys ...string) error {
	s.delMu.Lock()
	defer s.delMu.Unlock()

	deleted := 0
	for _, key := range keys {
		if _, found := s.cache.Get(key); found {
			s.cache.Delete(key)
			deleted++
		}
	}
	if deleted == 0 {
		return ErrCacheNotFound
	}
	return nil
}
