// internal/display/format.go

// Package display turns catalog values into presentation hints: flags,
// currency symbols, savings labels and brand palettes. Nothing here affects
// the numbers themselves.
package display

import (
	"github.com/shopspring/decimal"
)

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// SavingsLabel is a savings percentage ready to print. Text never carries a
// sign; Tone does.
type SavingsLabel struct {
	Text       string `json:"text"`
	Tone       Tone   `json:"tone"`
	IsPositive bool   `json:"is_positive"`
}

func FormatSavings(savings float64) SavingsLabel {
	text := decimal.NewFromFloat(savings).Abs().StringFixed(1) + "%"
	switch {
	case savings > 0:
		return SavingsLabel{Text: text, Tone: TonePositive, IsPositive: true}
	case savings < 0:
		return SavingsLabel{Text: text, Tone: ToneNegative, IsPositive: false}
	default:
		// zero reads as neutral rather than a loss
		return SavingsLabel{Text: text, Tone: ToneNeutral, IsPositive: true}
	}
}

const defaultFlag = "🌍"

var countryFlags = map[string]string{
	"Turkey":         "🇹🇷",
	"Argentina":      "🇦🇷",
	"India":          "🇮🇳",
	"Brazil":         "🇧🇷",
	"Philippines":    "🇵🇭",
	"Mexico":         "🇲🇽",
	"United Kingdom": "🇬🇧",
	"United States":  "🇺🇸",
	"Ukraine":        "🇺🇦",
}

func CountryFlag(country string) string {
	if flag, ok := countryFlags[country]; ok {
		return flag
	}
	return defaultFlag
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"BRL": "R$",
	"TRY": "₺",
}

// CurrencySymbol falls back to the ISO code itself.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

var tagColors = map[string]string{
	"Music":          "purple",
	"Video":          "blue",
	"Gaming":         "orange",
	"VPN Friendly":   "green",
	"VPN Restricted": "red",
}

// TagColor names the color family a tag badge is drawn in.
func TagColor(tag string) string {
	if color, ok := tagColors[tag]; ok {
		return color
	}
	return "gray"
}
