// Package cart owns the shopping cart: an ordered collection of
// product lines persisted after every mutation.
package cart

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
	blobKey   = "cart"
	storeName = "cart"
)

// Line is one product's accumulated quantity. The product snapshot is
// persisted alongside the quantity so the cart can render without a
// catalog lookup.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Store keeps cart lines in insertion order: the first product added
// stays first across quantity updates. Mutations never fail; they
// flush the persisted blob once hydration has completed.
type Store struct {
	port    storage.Port
	catalog *catalog.Catalog
	log     *zap.Logger
	metrics *kit.StoreMetrics

	mu     sync.RWMutex
	lines  []Line
	loaded bool
	subs   []func()
}

func New(port storage.Port, cat *catalog.Catalog, log *zap.Logger, metrics *kit.StoreMetrics) *Store {
	return &Store{
		port:    port,
		catalog: cat,
		log:     log,
		metrics: metrics,
	}
}

// Load hydrates the cart from its persisted blob. It runs once, before
// the store starts flushing; a corrupt blob is discarded and the cart
// starts empty. Mutations made before Load are kept in memory only and
// are replaced by the persisted state. A failed read leaves the store
// unloaded: it must not flush over a blob it never saw, and Load may
// be retried.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.port.Get(ctx, blobKey)
	if err != nil {
		s.log.Error("cart hydration read failed", zap.Error(err))
		s.metrics.Hydration(storeName, kit.HydrationReadError)
		return
	}
	s.loaded = true
	if !ok {
		s.metrics.Hydration(storeName, kit.HydrationEmpty)
		return
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.log.Warn("discarding corrupt cart blob", zap.Error(err))
		s.metrics.Hydration(storeName, kit.HydrationCorrupt)
		if err := s.port.Delete(ctx, blobKey); err != nil {
			s.log.Error("delete corrupt cart blob failed", zap.Error(err))
		}
		return
	}

	s.lines = lines
	s.metrics.Hydration(storeName, kit.HydrationLoaded)
}

// Subscribe registers fn to run after every completed mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add puts one unit of p in the cart: an existing line gains quantity,
// otherwise a new line is appended with quantity 1.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()

	found := false
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	}

	s.flushLocked("add")
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line; an unknown id is a no-op, never an insert.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()

	changed := false
	for i := range s.lines {
		if s.lines[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		changed = true
		break
	}

	if changed {
		s.flushLocked("update_quantity")
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Remove drops the line for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()

	changed := false
	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
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

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.flushLocked("clear")
	s.mu.Unlock()
	s.notify()
}

// Lines returns the cart content in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums catalog price times quantity across lines. A line whose
// product no longer resolves in the catalog contributes zero.
func (s *Store) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, l := range s.lines {
		p, ok := s.catalog.Get(l.ID)
		if !ok {
			continue
		}
		total += p.Price * int64(l.Quantity)
	}
	return total
}

// Count is the badge count: the sum of quantities, not the number of
// lines.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// flushLocked writes the blob unless hydration has not completed yet;
// the guard keeps an empty pre-load cart from clobbering persisted
// state. Callers hold the write lock.
func (s *Store) flushLocked(op string) {
	s.metrics.Mutation(storeName, op)

	if !s.loaded {
		return
	}

	b, err := json.Marshal(s.lines)
	if err != nil {
		s.log.Error("marshal cart failed", zap.Error(err))
		return
	}
	if err := s.port.Set(context.Background(), blobKey, string(b)); err != nil {
		s.log.Error("persist cart failed", zap.Error(err))
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
