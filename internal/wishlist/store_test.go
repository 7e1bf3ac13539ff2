package wishlist_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/internal/storage"
	"Storefront/internal/wishlist"
)

var (
	productA = catalog.Product{ID: "a", Name: "Keyboard", Category: "Gaming", Price: 1000, OldPrice: 1500}
	productB = catalog.Product{ID: "b", Name: "Mouse", Category: "Gaming", Price: 500}
)

func newStore(t *testing.T, port storage.Port) *wishlist.Store {
	t.Helper()

	s := wishlist.New(port, zap.NewNop(), nil)
	s.Load(context.Background())
	return s
}

func TestAddIsIdempotent(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	s.Add(productA)
	s.Add(productA)

	got := s.Products()
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].ID != "a" || got[0].Name != "Keyboard" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	s.Add(productB)
	s.Add(productA)
	s.Add(productB) // duplicate, must not reorder

	got := s.Products()
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("got %+v", got)
	}
}

func TestContains(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	s.Add(productA)

	if !s.Contains("a") {
		t.Fatal("membership lost")
	}
	if s.Contains("b") {
		t.Fatal("phantom membership")
	}
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	s.Add(productA)
	s.Remove("b")

	if s.Len() != 1 {
		t.Fatalf("got %d entries", s.Len())
	}

	s.Remove("a")
	if s.Len() != 0 {
		t.Fatalf("got %d entries after remove", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	s.Add(productA)
	s.Add(productB)
	s.Clear()

	if s.Len() != 0 || s.Contains("a") {
		t.Fatal("clear left entries behind")
	}
}

func TestSnapshotsDoNotTrackCatalog(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	p := productA
	s.Add(p)
	p.Price = 1 // later "catalog change"

	if got := s.Products()[0].Price; got != 1000 {
		t.Fatalf("snapshot price changed to %d", got)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	port := storage.NewMemStore()

	s := newStore(t, port)
	s.Add(productA)
	s.Add(productB)

	s2 := newStore(t, port)

	got := s2.Products()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("got %+v", got)
	}
	if got[0].OldPrice != 1500 {
		t.Fatalf("snapshot lost old price: %+v", got[0])
	}
}

func TestCorruptBlobDiscardedOnLoad(t *testing.T) {
	port := storage.NewMemStore()
	ctx := context.Background()

	if err := port.Set(ctx, "wishlist", `not json at all`); err != nil {
		t.Fatal(err)
	}

	s := wishlist.New(port, zap.NewNop(), nil)
	s.Load(ctx)

	if s.Len() != 0 {
		t.Fatalf("got %d entries from corrupt blob", s.Len())
	}
	if _, ok, _ := port.Get(ctx, "wishlist"); ok {
		t.Fatal("corrupt blob not discarded")
	}
}

// readErrPort simulates a backend outage on reads while keeping the
// underlying blob intact.
type readErrPort struct {
	*storage.MemStore
	fail bool
}

func (p *readErrPort) Get(ctx context.Context, key string) (string, bool, error) {
	if p.fail {
		return "", false, errors.New("backend down")
	}
	return p.MemStore.Get(ctx, key)
}

func TestReadErrorOnLoadKeepsStoreUnloaded(t *testing.T) {
	port := &readErrPort{MemStore: storage.NewMemStore(), fail: true}
	ctx := context.Background()

	blob := `[{"id":"b","name":"Mouse","price":500}]`
	if err := port.MemStore.Set(ctx, "wishlist", blob); err != nil {
		t.Fatal(err)
	}

	s := wishlist.New(port, zap.NewNop(), nil)
	s.Load(ctx)
	s.Add(productA)

	port.fail = false
	raw, ok, err := port.MemStore.Get(ctx, "wishlist")
	if err != nil || !ok || raw != blob {
		t.Fatalf("blob overwritten after failed hydration: %s", raw)
	}

	s.Load(ctx)
	if got := s.Products(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("retry hydration result: %+v", got)
	}
}

func TestMutationBeforeLoadIsNotFlushed(t *testing.T) {
	port := storage.NewMemStore()
	ctx := context.Background()

	if err := port.Set(ctx, "wishlist", `[{"id":"b","name":"Mouse","price":500}]`); err != nil {
		t.Fatal(err)
	}

	s := wishlist.New(port, zap.NewNop(), nil)
	s.Add(productA)

	raw, _, _ := port.Get(ctx, "wishlist")
	if raw != `[{"id":"b","name":"Mouse","price":500}]` {
		t.Fatalf("pre-load mutation clobbered blob: %s", raw)
	}

	s.Load(ctx)
	if got := s.Products(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("hydration result: %+v", got)
	}
}

func TestSubscribeSkipsNoOps(t *testing.T) {
	s := newStore(t, storage.NewMemStore())

	var calls int
	s.Subscribe(func() { calls++ })

	s.Add(productA)   // notify
	s.Add(productA)   // duplicate, no-op
	s.Remove("ghost") // no-op
	s.Remove("a")     // notify

	if calls != 2 {
		t.Fatalf("got %d notifications, want 2", calls)
	}
}
