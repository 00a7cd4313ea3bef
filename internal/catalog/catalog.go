// Package catalog is a read-only lookup over the loaded products.
// It resolves names and categories and never computes scores itself.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/huangsam/foodprint/core/algo"
	"github.com/huangsam/foodprint/internal/contract"
	"github.com/huangsam/foodprint/schema"
	"github.com/rotisserie/eris"
)

// Uncategorized labels products without a category.
const Uncategorized = "Uncategorized"

// ErrProductNotFound is returned when a name matches no product.
var ErrProductNotFound = eris.New("product not found")

// Catalog indexes products by folded name.
type Catalog struct {
	products []schema.Product
	index    map[string]int
}

// New builds a catalog. Category assignments, keyed by folded product name,
// take precedence over the category column of the dataset.
func New(products []schema.Product, categories map[string]string) *Catalog {
	c := &Catalog{
		products: make([]schema.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		key := contract.Fold(p.Name)
		if _, dup := c.index[key]; dup || key == "" {
			continue
		}
		if category, ok := categories[key]; ok {
			p.Category = category
		}
		c.index[key] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of all products in load order.
func (c *Catalog) Products() []schema.Product {
	return slices.Clone(c.products)
}

// Lookup finds a product by name, ignoring case and accents.
func (c *Catalog) Lookup(name string) (schema.Product, error) {
	idx, ok := c.index[contract.Fold(name)]
	if !ok {
		msg := name
		if suggestions := c.Suggest(name, 3); len(suggestions) > 0 {
			msg += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
		}
		return schema.Product{}, eris.Wrap(ErrProductNotFound, msg)
	}
	return c.products[idx], nil
}

// Suggest returns up to n product names containing the folded query.
func (c *Catalog) Suggest(query string, n int) []string {
	q := contract.Fold(query)
	if q == "" {
		return nil
	}
	var out []string
	for _, p := range c.products {
		if strings.Contains(contract.Fold(p.Name), q) {
			out = append(out, p.Name)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// Similar returns the n products closest in score to the named one, excluding itself.
func Similar(name string, results []schema.ProductResult, n int) []schema.ProductResult {
	key := contract.Fold(name)
	for _, r := range results {
		if contract.Fold(r.Name) == key {
			return algo.NearestByScore(results, r.Score, n, r.Name)
		}
	}
	return nil
}

// Alternatives returns up to n products of the same category that score
// higher than the named one, best first. Uncategorized products have none.
func Alternatives(name string, results []schema.ProductResult, n int) []schema.ProductResult {
	key := contract.Fold(name)
	var target *schema.ProductResult
	for i := range results {
		if contract.Fold(results[i].Name) == key {
			target = &results[i]
			break
		}
	}
	if target == nil || target.Category == "" {
		return nil
	}

	var better []schema.ProductResult
	for _, r := range results {
		if r.Category == target.Category && r.Score > target.Score {
			better = append(better, r)
		}
	}
	return algo.RankProducts(better, n)
}

// GroupByCategory groups results by category, keeping their order inside each
// group. Groups are sorted by name with uncategorized products last.
func GroupByCategory(results []schema.EnrichedProductResult) []schema.CategoryGroup {
	byCategory := make(map[string][]schema.EnrichedProductResult)
	for _, r := range results {
		category := r.Category
		if category == "" {
			category = Uncategorized
		}
		byCategory[category] = append(byCategory[category], r)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == Uncategorized) != (names[j] == Uncategorized) {
			return names[j] == Uncategorized
		}
		return names[i] < names[j]
	})

	groups := make([]schema.CategoryGroup, len(names))
	for i, name := range names {
		groups[i] = schema.CategoryGroup{Category: name, Products: byCategory[name]}
	}
	return groups
}
