package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort names the orderings the storefront offers.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortName      Sort = "name"
	SortRating    Sort = "rating"
)

// ParseSort maps a raw value onto a known Sort, falling back to
// featured so a bad parameter can never fail a query.
func ParseSort(v string) Sort {
	switch Sort(v) {
	case SortPriceLow, SortPriceHigh, SortName, SortRating:
		return Sort(v)
	default:
		return SortFeatured
	}
}

// Params are the query constraints, applied in a fixed order: deals,
// free-text search, category, price range, sort. Zero values pass
// everything through: an empty Search matches all, an empty or "All"
// Category matches all, and each price bound is independent, with
// zero meaning unbounded on that side. Bounds are inclusive; when
// both are set, MinPrice > MaxPrice yields an empty result.
type Params struct {
	Deals    bool
	Search   string
	Category string
	MinPrice int64
	MaxPrice int64
	Sort     Sort
}

// Search runs the query pipeline over the catalog. It is pure and
// deterministic; an empty result is a valid outcome, never an error.
func (c *Catalog) Search(params Params) []Product {
	out := make([]Product, 0, len(c.products))

	for _, p := range c.products {
		if params.Deals && !p.Discounted() {
			continue
		}
		if !matchesText(p, params.Search) {
			continue
		}
		if params.Category != "" && params.Category != CategoryAll && p.Category != params.Category {
			continue
		}
		if p.Price < params.MinPrice {
			continue
		}
		if params.MaxPrice > 0 && p.Price > params.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, params.Sort)
	return out
}

// matchesText is the shared free-text predicate: case-insensitive
// substring match on name, description or any tag.
func matchesText(p Product, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. All sorts are stable so featured is a
// true identity and ties keep their catalog order.
func sortProducts(ps []Product, s Sort) {
	switch s {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortName:
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(ps, func(i, j int) bool {
			return coll.CompareString(ps[i].Name, ps[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	}
}
