package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/als344572-ai/Rahal-store/internal/cache"
)

// SessionCookie carries the cart session id.
const SessionCookie = "rahal-cart"

const keyPrefix = "cart:"

// Store keeps one cart per session in the TTL cache. Every access renews
// the cart, so only idle carts expire.
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewStore creates a store whose carts live for ttl after their last use.
func NewStore(c *cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// NewSessionID returns a fresh session id.
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the session's cart, creating an empty one if needed.
func (s *Store) Get(sessionID string) *Cart {
	v := s.cache.GetOrCreate(keyPrefix+sessionID, func() any { return New() }, s.ttl)
	return v.(*Cart)
}

// Peek returns the session's cart without creating one.
func (s *Store) Peek(sessionID string) (*Cart, bool) {
	v, ok := s.cache.Touch(keyPrefix+sessionID, s.ttl)
	if !ok {
		return nil, false
	}
	c, ok := v.(*Cart)
	return c, ok
}

// Drop discards the session's cart.
func (s *Store) Drop(sessionID string) {
	s.cache.Delete(keyPrefix + sessionID)
}
