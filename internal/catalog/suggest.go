package catalog

import (
	"sort"
	"strconv"
	"strings"
)

const (
	newArrivalsLimit = 4
	trendingLimit    = 4
	liveResultsLimit = 6
)

// popularSearches is curated, not derived from the catalog.
var popularSearches = []string{
	"Gaming Headset",
	"Smart Plug",
	"USB Cable",
	"Wireless",
	"RGB",
	"Power Strip",
}

// PopularSearches returns the curated search terms shown before the
// shopper has typed anything.
func PopularSearches() []string {
	out := make([]string, len(popularSearches))
	copy(out, popularSearches)
	return out
}

// NewArrivals returns the newest products, taking the numeric value of
// the id as the arrival order. Non-numeric ids sort last.
func (c *Catalog) NewArrivals() []Product {
	ps := c.Products()
	sort.SliceStable(ps, func(i, j int) bool {
		return numericID(ps[i].ID) > numericID(ps[j].ID)
	})
	return capped(ps, newArrivalsLimit)
}

// Trending returns the top-rated products.
func (c *Catalog) Trending() []Product {
	ps := c.Products()
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	return capped(ps, trendingLimit)
}

// LiveResults returns the first matches for a typed query, in catalog
// order. An empty query yields an empty sequence; distinguishing "not
// typed yet" from "no matches" is the caller's concern.
func (c *Catalog) LiveResults(query string) []Product {
	if strings.TrimSpace(query) == "" {
		return []Product{}
	}

	out := make([]Product, 0, liveResultsLimit)
	for _, p := range c.products {
		if !matchesText(p, query) {
			continue
		}
		out = append(out, p)
		if len(out) == liveResultsLimit {
			break
		}
	}
	return out
}

func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return -1
	}
	return n
}

func capped(ps []Product, n int) []Product {
	if len(ps) > n {
		ps = ps[:n]
	}
	return ps
}
