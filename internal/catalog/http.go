package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Storefront/pkg/kit"
)

type Server struct {
	Catalog *Catalog
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// Register attaches the catalog routes to a shared router.
func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/suggestions", s.suggestions)
	r.Get("/products/{id}", s.get)
	r.Get("/categories", s.categories)
}

// list serves the query engine. The accepted parameters mirror the
// page-addressable state of the storefront: search, category,
// filter=deals, sort, min_price, max_price.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := Params{
		Deals:    q.Get("filter") == "deals",
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: parsePrice(q.Get("min_price")),
		MaxPrice: parsePrice(q.Get("max_price")),
		Sort:     ParseSort(q.Get("sort")),
	}

	kit.WriteJSON(w, http.StatusOK, s.Catalog.Search(params))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

type suggestionsResp struct {
	PopularSearches []string  `json:"popular_searches"`
	NewArrivals     []Product `json:"new_arrivals"`
	Trending        []Product `json:"trending"`
	Results         []Product `json:"results"`
}

func (s *Server) suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	kit.WriteJSON(w, http.StatusOK, suggestionsResp{
		PopularSearches: PopularSearches(),
		NewArrivals:     s.Catalog.NewArrivals(),
		Trending:        s.Catalog.Trending(),
		Results:         s.Catalog.LiveResults(query),
	})
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, Categories)
}

// parsePrice treats unparsable or negative values as an absent bound;
// catalog queries never fail on bad input.
func parsePrice(v string) int64 {
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
