package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	sweepInterval     = time.Minute
	defaultMaxEntries = 10000
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Writes drop expired entries at most once
// per sweepInterval, and a full store evicts the entry closest to expiry.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]memoryEntry),
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweepExpired(now)
	}
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.sweepExpired(now)
		if len(s.entries) >= s.maxEntries {
			s.evictSoonestExpiring()
		}
	}

	s.entries[key] = memoryEntry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

// sweepExpired must be called with mu held.
func (s *MemoryStore) sweepExpired(now time.Time) {
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

// evictSoonestExpiring must be called with mu held.
func (s *MemoryStore) evictSoonestExpiring() {
	var victim string
	var soonest time.Time
	for key, entry := range s.entries {
		if victim == "" || entry.expiresAt.Before(soonest) {
			victim, soonest = key, entry.expiresAt
		}
	}
	delete(s.entries, victim)
}

func (s *MemoryStore) DeletePrefix(_ context.Context, prefixes ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(s.entries, key)
				break
			}
		}
	}
	return nil
}

// Len is the number of entries, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
