package session_cache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TechNest-Affiliates/technest-storefront-backend/view"
)

// ── View session cache ───────────────────────────────────────────────────────
// Holds one view.Session per visitor, keyed by the session cookie. Sessions
// idle longer than the TTL are dropped opportunistically on writes.

const DefaultTTL = 30 * time.Minute

type Cache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[uuid.UUID]*view.Session
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*view.Session),
	}
}

func (c *Cache) Get(id uuid.UUID) (*view.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[id]
	if !ok || time.Since(s.LastSeen()) > c.ttl {
		return nil, false
	}
	return s, true
}

func (c *Cache) Put(s *view.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeExpiredLocked()
	c.sessions[s.ID] = s
}

func (c *Cache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id]; ok {
		s.Close()
		delete(c.sessions, id)
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}

// purgeExpiredLocked drops idle sessions; callers hold the write lock.
func (c *Cache) purgeExpiredLocked() {
	for id, s := range c.sessions {
		if time.Since(s.LastSeen()) > c.ttl {
			s.Close()
			delete(c.sessions, id)
		}
	}
}
