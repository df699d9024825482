package windowstore

import (
	"context"
	"sync"
	"time"

	"github.com/kakaon/fraud-service/internal/models"
)

// MemoryStore is a process-local Store used for tests and single-instance
// deployments. TTLs are honored lazily: expired entries are dropped on the
// next access to their key, mirroring Redis self-expiry closely enough for
// the detectors, which always re-filter by event time anyway.
type MemoryStore struct {
	mu      sync.Mutex
	scalars map[string]memoryScalar
	hashes  map[string]map[string]string
	lists   map[string]*memoryList
	now     func() time.Time
}

type memoryScalar struct {
	value     string
	expiresAt time.Time
}

type memoryList struct {
	events    []models.PaymentEvent
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scalars: make(map[string]memoryScalar),
		hashes:  make(map[string]map[string]string),
		lists:   make(map[string]*memoryList),
		now:     time.Now,
	}
}

// Exists reports presence regardless of key shape, like Redis EXISTS: a
// key holding only hash fields still counts as present.
func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.scalars[key]; ok {
		if s.now().After(entry.expiresAt) {
			delete(s.scalars, key)
		} else {
			return true, nil
		}
	}
	if fields, ok := s.hashes[key]; ok && len(fields) > 0 {
		return true, nil
	}
	return false, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scalars[key] = memoryScalar{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) HGet(_ context.Context, key, field string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.hashes[key]
	if !ok {
		return "", nil
	}
	return fields[field], nil
}

func (s *MemoryStore) HSet(_ context.Context, key, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.hashes[key]
	if !ok {
		fields = make(map[string]string)
		s.hashes[key] = fields
	}
	fields[field] = value
	return nil
}

func (s *MemoryStore) Push(_ context.Context, key string, event models.PaymentEvent, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[key]
	if !ok || s.now().After(list.expiresAt) {
		list = &memoryList{}
		s.lists[key] = list
	}
	list.events = append(list.events, event)
	list.expiresAt = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) Range(_ context.Context, key string) ([]models.PaymentEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[key]
	if !ok {
		return nil, nil
	}
	if s.now().After(list.expiresAt) {
		delete(s.lists, key)
		return nil, nil
	}
	out := make([]models.PaymentEvent, len(list.events))
	copy(out, list.events)
	return out, nil
}
