package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// Session bundles the state containers of one visitor. Callers hold the session lock
// around every read and mutation; the lock stands in for the browser's single event loop.
type Session struct {
	ID uuid.UUID

	Cart      *Cart
	Reactions *ReactionStore
	Catalog   *CatalogStore
	Hero      *HeroPreference
	Router    *Router

	mu          sync.Mutex
	submitting  bool
	history     []*entity.Order
	hasHistory  bool
	historyGen  uint64
	lastTouched time.Time
}

// Lock acquires exclusive access to the session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// BeginSubmission marks an order submission as in flight. It returns false when one already is.
// The caller must hold the lock.
func (s *Session) BeginSubmission() bool {
	if s.submitting {
		return false
	}
	s.submitting = true

	return true
}

// EndSubmission clears the in-flight marker. The caller must hold the lock.
func (s *Session) EndSubmission() {
	s.submitting = false
}

// Submitting reports whether an order submission is in flight. The caller must hold the lock.
func (s *Session) Submitting() bool {
	return s.submitting
}

// CachedOrderHistory returns the cached history, if any. The caller must hold the lock.
func (s *Session) CachedOrderHistory() ([]*entity.Order, bool) {
	return s.history, s.hasHistory
}

// OrderHistoryGeneration returns a counter bumped on every invalidation. Capture it before
// fetching history and hand it to CacheOrderHistory. The caller must hold the lock.
func (s *Session) OrderHistoryGeneration() uint64 {
	return s.historyGen
}

// CacheOrderHistory stores history fetched at generation gen. It reports false and stores
// nothing when the history was invalidated since gen was read. The caller must hold the lock.
func (s *Session) CacheOrderHistory(gen uint64, orders []*entity.Order) bool {
	if gen != s.historyGen {
		return false
	}
	s.history = orders
	s.hasHistory = true

	return true
}

// InvalidateOrderHistory drops the cached history. The caller must hold the lock.
func (s *Session) InvalidateOrderHistory() {
	s.history = nil
	s.hasHistory = false
	s.historyGen++
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithCatalogOptions passes options to every CatalogStore the registry builds.
func WithCatalogOptions(opts ...CatalogOption) RegistryOption {
	return func(r *Registry) {
		r.catalogOpts = append(r.catalogOpts, opts...)
	}
}

// WithClock replaces the clock used for idle tracking.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry owns the live sessions of this process. Sessions that are not live are rebuilt
// from persisted state on first use; their carts start empty.
type Registry struct {
	kv          repository.KeyValueStore
	keys        KeySpace
	seed        []entity.Product
	logger      *slog.Logger
	catalogOpts []CatalogOption
	now         func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty registry persisting through kv under keyPrefix.
func NewRegistry(kv repository.KeyValueStore, keyPrefix string, logger *slog.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		kv:       kv,
		keys:     NewKeySpace(keyPrefix),
		seed:     SeedProducts(),
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create starts a brand-new session.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id), nil
}

// Get returns the live session for id, rebuilding it from storage when necessary.
// Rebuilds read storage without holding the registry lock; when two callers race to
// rebuild the same id, the first stored session wins.
func (r *Registry) Get(ctx context.Context, id uuid.UUID) *Session {
	if sess, ok := r.lookup(id); ok {
		return sess
	}

	built := r.build(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[id]; ok {
		sess.lastTouched = r.now()

		return sess
	}
	r.sessions[id] = built

	return built
}

func (r *Registry) lookup(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if ok {
		sess.lastTouched = r.now()
	}

	return sess, ok
}

func (r *Registry) build(ctx context.Context, id uuid.UUID) *Session {
	logger := r.logger.With(slog.String("session_id", id.String()))

	cart := NewCart()
	catalog := NewCatalogStore(ctx, r.kv, r.keys.UserProducts(id), r.seed, logger, r.catalogOpts...)

	return &Session{
		ID:          id,
		Cart:        cart,
		Reactions:   NewReactionStore(ctx, r.kv, r.keys.Reactions(id), logger),
		Catalog:     catalog,
		Hero:        NewHeroPreference(ctx, r.kv, r.keys.HeroImage(id), logger),
		Router:      NewRouter(cart, catalog),
		lastTouched: r.now(),
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// EvictIdle drops live sessions untouched for longer than maxIdle and returns how many were dropped.
// Sessions with an order submission in flight are kept.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	evicted := 0
	for id, sess := range r.sessions {
		if !sess.lastTouched.Before(cutoff) {
			continue
		}
		if !sess.mu.TryLock() {
			continue
		}
		busy := sess.submitting
		sess.mu.Unlock()
		if busy {
			continue
		}
		delete(r.sessions, id)
		evicted++
	}

	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (r *Registry) RunEviction(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictIdle(maxIdle); n > 0 {
				r.logger.Debug("Evicted idle sessions",
					slog.Int("evicted", n),
					slog.Int("live", r.Len()),
				)
			}
		}
	}
}
