// internal/pricing/savings.go

// Package pricing derives savings, filtered views and VPN economics from a
// catalog snapshot. Every function here is pure: inputs are never mutated
// and results share no slices with them.
package pricing

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/subscription-index/internal/models"
)

// RecomputeSavings returns a copy of products with every price record's
// savings computed against the product's price in homeCountry.
//
//   - home price > 0: savings = round1((home - price) / home * 100), and 100
//     for a non-positive price.
//   - home price <= 0: every savings is 0.
//   - no record for homeCountry: every savings is 0 and the base fields are
//     left as they were.
//
// Base fields follow the home record whenever one exists.
func RecomputeSavings(products []models.Product, homeCountry string) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = recomputeProduct(p, homeCountry)
	}
	return out
}

func recomputeProduct(p models.Product, homeCountry string) models.Product {
	item := p.Clone()

	home, ok := item.PriceFor(homeCountry)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"product":      item.Name,
			"product_id":   item.ID,
			"home_country": homeCountry,
		}).Warn("No pricing data found for home country")
		for i := range item.Prices {
			item.Prices[i].Savings = 0
		}
		return item
	}

	for i := range item.Prices {
		item.Prices[i].Savings = savingsAgainst(home.Price, item.Prices[i].Price)
	}
	item.BasePrice = home.Price
	item.BaseCountry = homeCountry
	item.BaseCurrency = home.Currency
	return item
}

// InitialSavings computes savings for each product against its own base
// country, the way the catalog is prepared right after loading. Products
// whose base country has no price record are returned unchanged.
func InitialSavings(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		item := p.Clone()
		base, ok := item.PriceFor(item.BaseCountry)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"product":      item.Name,
				"product_id":   item.ID,
				"base_country": item.BaseCountry,
			}).Warn("No pricing data found for base country")
			out[i] = item
			continue
		}
		for j := range item.Prices {
			item.Prices[j].Savings = savingsAgainst(base.Price, item.Prices[j].Price)
		}
		out[i] = item
	}
	return out
}

func savingsAgainst(reference, price float64) float64 {
	if reference <= 0 {
		return 0
	}
	if price <= 0 {
		return 100
	}
	return round1((reference - price) / reference * 100)
}

// MaxSavings is the highest savings across a product's price records.
// A product without prices has no savings and sorts last.
func MaxSavings(p models.Product) float64 {
	if len(p.Prices) == 0 {
		return math.Inf(-1)
	}
	best := p.Prices[0].Savings
	for _, price := range p.Prices[1:] {
		if price.Savings > best {
			best = price.Savings
		}
	}
	return best
}
