// internal/display/card.go
package display

import (
	"cmp"
	"slices"

	"github.com/javajoker/subscription-index/internal/models"
)

// PricesToShow is how many country prices a card lists before "show all".
const PricesToShow = 4

type PriceView struct {
	models.PriceRecord
	Flag           string       `json:"flag"`
	CurrencySymbol string       `json:"currency_symbol"`
	SavingsLabel   SavingsLabel `json:"savings_label"`
}

// Card is the rendering summary of one product.
type Card struct {
	Palette        Palette           `json:"palette"`
	CurrencySymbol string            `json:"base_currency_symbol"`
	TagColors      map[string]string `json:"tag_colors"`
	Best           *PriceView        `json:"best,omitempty"`
	Prices         []PriceView       `json:"prices"`
	TotalPrices    int               `json:"total_prices"`
	HasMore        bool              `json:"has_more"`
}

func NewPriceView(record models.PriceRecord) PriceView {
	return PriceView{
		PriceRecord:    record,
		Flag:           CountryFlag(record.Country),
		CurrencySymbol: CurrencySymbol(record.Currency),
		SavingsLabel:   FormatSavings(record.Savings),
	}
}

// CardFor lists p's prices by savings, highest first, restricted to
// selectedCountry unless it is "All" or empty. At most limit prices are
// listed; limit <= 0 lists all of them. Best is the highest-savings record.
func CardFor(p models.Product, selectedCountry string, limit int) Card {
	card := Card{
		Palette:        PaletteFor(p.Style),
		CurrencySymbol: CurrencySymbol(p.BaseCurrency),
		TagColors:      make(map[string]string, len(p.Tags)),
		Prices:         []PriceView{},
	}
	for _, tag := range p.Tags {
		card.TagColors[tag] = TagColor(tag)
	}

	sorted := make([]models.PriceRecord, 0, len(p.Prices))
	for _, price := range p.Prices {
		if selectedCountry == "" || selectedCountry == models.AllCountries || price.Country == selectedCountry {
			sorted = append(sorted, price)
		}
	}
	slices.SortStableFunc(sorted, func(a, b models.PriceRecord) int {
		return cmp.Compare(b.Savings, a.Savings)
	})

	card.TotalPrices = len(sorted)
	if len(sorted) == 0 {
		return card
	}

	best := NewPriceView(sorted[0])
	card.Best = &best

	shown := sorted
	if limit > 0 && len(sorted) > limit {
		shown = sorted[:limit]
		card.HasMore = true
	}
	for _, price := range shown {
		card.Prices = append(card.Prices, NewPriceView(price))
	}
	return card
}
