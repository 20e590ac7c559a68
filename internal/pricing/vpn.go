// internal/pricing/vpn.go
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/javajoker/subscription-index/internal/models"
)

// EvaluateVpnEconomics compares what the selected products cost at their
// base price with the cheapest country price of each, net of a monthly VPN
// subscription. Only products that are both selected and VPN friendly are
// counted; anything else in selectedIDs is ignored.
//
// When several countries share the cheapest price the first one in the
// product's price list is reported.
func EvaluateVpnEconomics(selectedIDs []int, visible []models.Product, monthlyVpnCost float64) models.VpnEconomics {
	economics := models.VpnEconomics{
		MonthlyVpnCost:  monthlyVpnCost,
		Recommendations: []models.VpnRecommendation{},
	}

	selected := make(map[int]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	current := decimal.Zero
	best := decimal.Zero
	for _, p := range visible {
		if _, ok := selected[p.ID]; !ok || !p.VpnFriendly {
			continue
		}
		rec, ok := recommend(p)
		if !ok {
			continue
		}
		economics.Recommendations = append(economics.Recommendations, rec)
		current = current.Add(decimal.NewFromFloat(rec.BasePrice))
		best = best.Add(decimal.NewFromFloat(rec.BestPrice))
	}

	if len(economics.Recommendations) == 0 {
		return economics
	}

	cost := decimal.NewFromFloat(monthlyVpnCost)
	savings := current.Sub(best)
	net := savings.Sub(cost)

	economics.TotalCurrentCost = current.InexactFloat64()
	economics.TotalBestCost = best.InexactFloat64()
	economics.TotalSavings = savings.InexactFloat64()
	economics.NetSavings = net.InexactFloat64()
	economics.AnnualNetSavings = net.Mul(decimal.NewFromInt(12)).InexactFloat64()
	if savings.IsPositive() {
		economics.BreakEvenPoint = monthlyVpnCost / economics.TotalSavings
	}
	economics.Recommended = net.IsPositive()
	return economics
}

func recommend(p models.Product) (models.VpnRecommendation, bool) {
	if len(p.Prices) == 0 {
		return models.VpnRecommendation{}, false
	}

	cheapest := p.Prices[0]
	for _, price := range p.Prices[1:] {
		if price.Price < cheapest.Price {
			cheapest = price
		}
	}

	savings := decimal.NewFromFloat(p.BasePrice).Sub(decimal.NewFromFloat(cheapest.Price)).InexactFloat64()
	return models.VpnRecommendation{
		ProductID:      p.ID,
		Product:        p.Name,
		Style:          p.Style,
		BasePrice:      p.BasePrice,
		BestPrice:      cheapest.Price,
		BestCountry:    cheapest,
		Savings:        savings,
		SavingsPercent: percentOf(savings, p.BasePrice),
	}, true
}
