// internal/pricing/filters.go
package pricing

import (
	"cmp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/javajoker/subscription-index/internal/models"
)

// ApplyFilters keeps the products matching every predicate of filters and
// orders them by filters.SortBy. An empty search term, the "All" country (or
// no country) and an empty tag set match everything. Unknown sort keys sort
// by savings.
func ApplyFilters(products []models.Product, filters models.FilterState) []models.Product {
	search := strings.ToLower(filters.SearchTerm)
	noop := filters.IsNoop()

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if noop {
			filtered = append(filtered, p.Clone())
			continue
		}
		if !matchesSearch(p, search) ||
			!matchesCountry(p, filters.SelectedCountry) ||
			!matchesTags(p, filters.SelectedTags) {
			continue
		}
		filtered = append(filtered, p.Clone())
	}

	sortProducts(filtered, filters.SortBy)
	return filtered
}

func matchesSearch(p models.Product, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(p.Name), search)
}

func matchesCountry(p models.Product, country string) bool {
	if country == "" || country == models.AllCountries {
		return true
	}
	_, ok := p.PriceFor(country)
	return ok
}

func matchesTags(p models.Product, tags []string) bool {
	for _, tag := range tags {
		if !p.HasTag(tag) {
			return false
		}
	}
	return true
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortByName:
		c := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	case models.SortByCategory:
		c := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return c.CompareString(a.Category, b.Category)
		})
	case models.SortByPrice:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(a.BasePrice, b.BasePrice)
		})
	default:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(MaxSavings(b), MaxSavings(a))
		})
	}
}

// DistinctCountries lists every country appearing in any price record,
// sorted, after the "All" sentinel.
func DistinctCountries(products []models.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		for _, price := range p.Prices {
			seen[price.Country] = struct{}{}
		}
	}
	return append([]string{models.AllCountries}, sortedKeys(seen)...)
}

// DistinctTags lists every tag carried by any product, sorted.
func DistinctTags(products []models.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
