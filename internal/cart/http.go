package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Storefront/internal/catalog"
	"Storefront/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Cart    *Store
	Catalog *catalog.Catalog
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// Register attaches the cart routes to a shared router.
func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.get)
	r.Post("/cart/items", s.addItem)
	r.Put("/cart/items/{id}", s.updateItem)
	r.Delete("/cart/items/{id}", s.removeItem)
	r.Delete("/cart", s.clear)
}

type cartResp struct {
	Items []Line `json:"items"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

func (s *Server) snapshot() cartResp {
	return cartResp{
		Items: s.Cart.Lines(),
		Total: s.Cart.Total(),
		Count: s.Cart.Count(),
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

type addItemReq struct {
	ProductID string `json:"product_id"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	p, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	s.Cart.Add(p)
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	s.Cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	s.Cart.Remove(chi.URLParam(r, "id"))
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	s.Cart.Clear()
	kit.WriteJSON(w, http.StatusOK, s.snapshot())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
