// Package wishlist owns the saved-products list: full product
// snapshots deduplicated by id, in insertion order.
package wishlist

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/internal/storage"
	"Storefront/pkg/kit"
)

const (
	blobKey   = "wishlist"
	storeName = "wishlist"
)

// Store holds full Product snapshots rather than ids. Entries
// deliberately do not track later catalog changes; the catalog is
// static for the lifetime of the process.
type Store struct {
	port    storage.Port
	log     *zap.Logger
	metrics *kit.StoreMetrics

	mu       sync.RWMutex
	products []catalog.Product
	loaded   bool
	subs     []func()
}

func New(port storage.Port, log *zap.Logger, metrics *kit.StoreMetrics) *Store {
	return &Store{
		port:    port,
		log:     log,
		metrics: metrics,
	}
}

// Load hydrates the wishlist once from its persisted blob, discarding
// a corrupt blob and starting empty. A failed read leaves the store
// unloaded so no flush can overwrite a blob it never saw; Load may be
// retried.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.port.Get(ctx, blobKey)
	if err != nil {
		s.log.Error("wishlist hydration read failed", zap.Error(err))
		s.metrics.Hydration(storeName, kit.HydrationReadError)
		return
	}
	s.loaded = true
	if !ok {
		s.metrics.Hydration(storeName, kit.HydrationEmpty)
		return
	}

	var products []catalog.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		s.log.Warn("discarding corrupt wishlist blob", zap.Error(err))
		s.metrics.Hydration(storeName, kit.HydrationCorrupt)
		if err := s.port.Delete(ctx, blobKey); err != nil {
			s.log.Error("delete corrupt wishlist blob failed", zap.Error(err))
		}
		return
	}

	s.products = products
	s.metrics.Hydration(storeName, kit.HydrationLoaded)
}

func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add saves p unless it is already wishlisted. Idempotent: no
// duplicates, no quantity concept.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()

	for _, have := range s.products {
		if have.ID == p.ID {
			s.mu.Unlock()
			return
		}
	}

	s.products = append(s.products, p)
	s.flushLocked("add")
	s.mu.Unlock()
	s.notify()
}

// Remove drops the entry for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()

	changed := false
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			changed = true
			break
		}
	}

	if changed {
		s.flushLocked("remove")
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Contains reports wishlist membership.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.mu.Lock()
	s.products = nil
	s.flushLocked("clear")
	s.mu.Unlock()
	s.notify()
}

// Products returns the wishlist in insertion order.
func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) flushLocked(op string) {
	s.metrics.Mutation(storeName, op)

	if !s.loaded {
		return
	}

	b, err := json.Marshal(s.products)
	if err != nil {
		s.log.Error("marshal wishlist failed", zap.Error(err))
		return
	}
	if err := s.port.Set(context.Background(), blobKey, string(b)); err != nil {
		s.log.Error("persist wishlist failed", zap.Error(err))
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
