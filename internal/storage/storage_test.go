package storage_test

import (
	"context"
	"testing"

	"Storefront/internal/storage"
)

func ports(t *testing.T) map[string]storage.Port {
	t.Helper()

	fs, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}

	return map[string]storage.Port{
		"memory": storage.NewMemStore(),
		"file":   fs,
	}
}

func TestPortRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, p := range ports(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := p.Get(ctx, "cart"); err != nil || ok {
				t.Fatalf("empty store: got ok=%v err=%v", ok, err)
			}

			if err := p.Set(ctx, "cart", `[{"id":"1"}]`); err != nil {
				t.Fatalf("set: %v", err)
			}

			v, ok, err := p.Get(ctx, "cart")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if v != `[{"id":"1"}]` {
				t.Fatalf("got %q", v)
			}

			if err := p.Set(ctx, "cart", `[]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			v, _, _ = p.Get(ctx, "cart")
			if v != `[]` {
				t.Fatalf("overwrite kept old value: %q", v)
			}

			if err := p.Delete(ctx, "cart"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := p.Get(ctx, "cart"); ok {
				t.Fatal("blob still present after delete")
			}

			// Deleting a missing key is not an error.
			if err := p.Delete(ctx, "cart"); err != nil {
				t.Fatalf("second delete: %v", err)
			}
		})
	}
}

func TestPortKeysAreIndependent(t *testing.T) {
	ctx := context.Background()

	for name, p := range ports(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Set(ctx, "cart", "a"); err != nil {
				t.Fatal(err)
			}
			if err := p.Set(ctx, "wishlist", "b"); err != nil {
				t.Fatal(err)
			}

			if err := p.Delete(ctx, "cart"); err != nil {
				t.Fatal(err)
			}

			v, ok, err := p.Get(ctx, "wishlist")
			if err != nil || !ok || v != "b" {
				t.Fatalf("wishlist blob affected: v=%q ok=%v err=%v", v, ok, err)
			}
		})
	}
}
