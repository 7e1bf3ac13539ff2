package wishlist

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Storefront/internal/catalog"
	"Storefront/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Wishlist *Store
	Catalog  *catalog.Catalog
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// Register attaches the wishlist routes to a shared router.
func (s *Server) Register(r chi.Router) {
	r.Get("/wishlist", s.list)
	r.Post("/wishlist/items", s.addItem)
	r.Delete("/wishlist/items/{id}", s.removeItem)
	r.Delete("/wishlist", s.clear)
}

type wishlistResp struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

func (s *Server) snapshot() wishlistResp {
	items := s.Wishlist.Products()
	return wishlistResp{Items: items, Count: len(items)}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

type addItemReq struct {
	ProductID string `json:"product_id"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req addItemReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	s.Wishlist.Add(p)
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	s.Wishlist.Remove(chi.URLParam(r, "id"))
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	s.Wishlist.Clear()
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}
