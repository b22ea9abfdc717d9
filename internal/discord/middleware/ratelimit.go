package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
)

// RateLimitStore counts requests per key within a window
type RateLimitStore interface {
	Increment(key string, window time.Duration) (int, error)
}

// RateLimitConfig configures the rate limit middleware
type RateLimitConfig struct {
	// MaxRequests allowed per key within Window
	MaxRequests int
	Window      time.Duration

	// KeyFunc derives the limit key; the user ID when nil
	KeyFunc func(*core.InteractionContext) string

	// Store defaults to an in-memory store
	Store RateLimitStore
}

// RateLimitMiddleware rejects interactions over the limit with an
// ephemeral notice. Store failures let the request through.
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(ctx *core.InteractionContext) string { return ctx.UserID }
	}
	store := config.Store
	if store == nil {
		store = NewMemoryRateLimitStore()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := keyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			count, err := store.Increment(key, config.Window)
			if err != nil {
				return next.Handle(ctx)
			}
			if count > config.MaxRequests {
				return &core.HandlerResult{
					Response: core.NewEphemeralResponse(fmt.Sprintf(
						"⏱️ You're doing that too fast. Give it %v and try again.", config.Window)),
				}, nil
			}

			return next.Handle(ctx)
		})
	}
}

// UserRateLimitMiddleware limits each user to maxRequests per window
func UserRateLimitMiddleware(maxRequests int, window time.Duration) core.Middleware {
	return RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
	})
}

// MemoryRateLimitStore keeps fixed-window counters in memory
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates an empty store
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
	}
}

// Increment bumps the counter for key, starting a fresh window when
// the previous one has passed.
func (s *MemoryRateLimitStore) Increment(key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b, ok := s.buckets[key]
	if !ok || now.After(b.resetAt) {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}
	b.count++

	// Expired buckets pile up one per inactive user; sweep them once
	// the map gets big rather than running a ticker goroutine.
	if len(s.buckets) > 1024 {
		for k, v := range s.buckets {
			if now.After(v.resetAt) {
				delete(s.buckets, k)
			}
		}
	}

	return b.count, nil
}
