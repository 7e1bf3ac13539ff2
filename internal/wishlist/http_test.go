package wishlist_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"Storefront/internal/catalog"
	"Storefront/internal/storage"
	"Storefront/internal/wishlist"
)

func newWishlistTS(t *testing.T) *httptest.Server {
	t.Helper()

	store := newStore(t, storage.NewMemStore())
	s := &wishlist.Server{
		Wishlist: store,
		Catalog:  catalog.New([]catalog.Product{productA, productB}),
	}
	h := wishlist.NewHandler(s, wishlist.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "wishlist",
	})
	return httptest.NewServer(h)
}

type wishlistResp struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

func do(t *testing.T, method, url string, body any) (int, wishlistResp) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	var out wishlistResp
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode, out
}

func TestWishlistFlow(t *testing.T) {
	ts := newWishlistTS(t)
	defer ts.Close()

	code, wl := do(t, http.MethodGet, ts.URL+"/wishlist", nil)
	if code != http.StatusOK || wl.Count != 0 {
		t.Fatalf("empty wishlist: code=%d %+v", code, wl)
	}

	code, wl = do(t, http.MethodPost, ts.URL+"/wishlist/items", map[string]string{"product_id": "a"})
	if code != http.StatusOK || wl.Count != 1 || wl.Items[0].ID != "a" {
		t.Fatalf("after add: code=%d %+v", code, wl)
	}

	// Duplicate add keeps a single entry.
	code, wl = do(t, http.MethodPost, ts.URL+"/wishlist/items", map[string]string{"product_id": "a"})
	if code != http.StatusOK || wl.Count != 1 {
		t.Fatalf("after duplicate add: code=%d %+v", code, wl)
	}

	do(t, http.MethodPost, ts.URL+"/wishlist/items", map[string]string{"product_id": "b"})
	code, wl = do(t, http.MethodDelete, ts.URL+"/wishlist/items/a", nil)
	if code != http.StatusOK || wl.Count != 1 || wl.Items[0].ID != "b" {
		t.Fatalf("after remove: code=%d %+v", code, wl)
	}

	code, wl = do(t, http.MethodDelete, ts.URL+"/wishlist", nil)
	if code != http.StatusOK || wl.Count != 0 {
		t.Fatalf("after clear: code=%d %+v", code, wl)
	}
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	ts := newWishlistTS(t)
	defer ts.Close()

	code, _ := do(t, http.MethodPost, ts.URL+"/wishlist/items", map[string]string{"product_id": "ghost"})
	if code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", code)
	}

	if code, wl := do(t, http.MethodGet, ts.URL+"/wishlist", nil); code != http.StatusOK || wl.Count != 0 {
		t.Fatalf("failed add mutated wishlist: %+v", wl)
	}
}

func TestWishlistBadJSON(t *testing.T) {
	ts := newWishlistTS(t)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/wishlist/items", "application/json", bytes.NewBufferString(`{not json`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}
