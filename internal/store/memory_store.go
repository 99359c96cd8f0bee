package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/league-admin/internal/teamlist"
)

const (
	defaultTTL      = 30 * time.Minute
	defaultMaxPages = 10000
)

type entry struct {
	page    teamlist.Page
	touched time.Time
}

// MemoryStore keeps a thread-safe map of team page states in memory.
// Pages idle for longer than the TTL are pruned on the next Put. When the store is
// full, Put evicts the least recently touched page.
type MemoryStore struct {
	mu       sync.RWMutex
	pages    map[string]entry
	ttl      time.Duration
	maxPages int
	now      func() time.Time
}

// Option customizes a MemoryStore.
type Option func(*MemoryStore)

// WithMaxPages caps how many page states are held. Non-positive values keep the default.
func WithMaxPages(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxPages = n
		}
	}
}

// NewMemoryStore constructs an empty MemoryStore. A non-positive ttl uses the default.
func NewMemoryStore(ttl time.Duration, opts ...Option) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	s := &MemoryStore{
		pages:    make(map[string]entry),
		ttl:      ttl,
		maxPages: defaultMaxPages,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stores a copy of the page, replacing any page with the same id.
func (s *MemoryStore) Put(page teamlist.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	if _, exists := s.pages[page.ID]; !exists && len(s.pages) >= s.maxPages {
		s.evictOldestLocked()
	}
	s.pages[page.ID] = entry{page: page.Clone(), touched: now}
}

// Get returns a copy of a live page.
func (s *MemoryStore) Get(id string) (teamlist.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.pages[id]
	if !ok || s.expired(e, s.now()) {
		return teamlist.Page{}, false
	}
	return e.page.Clone(), true
}

// Update applies fn to a live page under the store lock and returns a copy of the result.
func (s *MemoryStore) Update(id string, fn func(*teamlist.Page)) (teamlist.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.pages[id]
	if !ok || s.expired(e, now) {
		return teamlist.Page{}, false
	}
	fn(&e.page)
	e.touched = now
	s.pages[id] = e
	return e.page.Clone(), true
}

// Len reports how many pages are held, including ones not yet pruned.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

func (s *MemoryStore) expired(e entry, now time.Time) bool {
	return now.Sub(e.touched) > s.ttl
}

func (s *MemoryStore) pruneLocked(now time.Time) {
	for id, e := range s.pages {
		if s.expired(e, now) {
			delete(s.pages, id)
		}
	}
}

func (s *MemoryStore) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.pages {
		if oldestID == "" || e.touched.Before(oldest) {
			oldestID, oldest = id, e.touched
		}
	}
	if oldestID != "" {
		delete(s.pages, oldestID)
	}
}
