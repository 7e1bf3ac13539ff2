// Package catalog holds the static product catalog and the pure query
// and suggestion engines that read it.
package catalog

import "math"

// Product is an immutable catalog record. Prices are whole rupees.
// OldPrice, Images, Colors, Sizes and Specs are optional; a zero
// OldPrice means the product is not discounted.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       int64             `json:"price"`
	OldPrice    int64             `json:"oldPrice,omitempty"`
	Rating      float64           `json:"rating"`
	Tags        []string          `json:"tags"`
	Image       string            `json:"image,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Colors      []string          `json:"colors,omitempty"`
	Sizes       []string          `json:"sizes,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
}

// Discounted reports whether the product carries a deal price.
func (p Product) Discounted() bool { return p.OldPrice > 0 }

// DiscountPercent is the badge percentage shown on discounted
// products: round(((old-current)/old)*100). Zero when there is no
// discount to compute.
func DiscountPercent(current, old int64) int {
	if old <= 0 {
		return 0
	}
	return int(math.Round(float64(old-current) / float64(old) * 100))
}

// CategoryAll is the sentinel matching every category.
const CategoryAll = "All"

// Categories lists the filterable categories, CategoryAll first.
var Categories = []string{
	CategoryAll,
	"Gaming",
	"Smart Home",
	"Power & Plugs",
	"Audio",
	"Accessories",
}

// Catalog is the fixed, ordered product sequence offered by the
// storefront. It is never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]int
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Products returns the catalog in insertion order. The slice is a copy;
// callers may reorder it freely.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int { return len(c.products) }
