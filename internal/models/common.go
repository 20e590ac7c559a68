// internal/models/common.go
package models

// AllCountries is the country filter sentinel that matches every product.
const AllCountries = "All"

// Enums
type StyleKey string

// Brand styles a presentation layer resolves to colors and icons.
const (
	StyleGeneric StyleKey = "generic"
	StyleYouTube StyleKey = "youtube"
	StyleSpotify StyleKey = "spotify"
	StyleApple   StyleKey = "apple"
	StyleNetflix StyleKey = "netflix"
	StyleDisney  StyleKey = "disney"
	StyleOpenAI  StyleKey = "openai"
	StyleTidal   StyleKey = "tidal"
	StyleXbox    StyleKey = "xbox"
	StyleAmazon  StyleKey = "amazon"
)

var styleKeys = map[StyleKey]bool{
	StyleGeneric: true,
	StyleYouTube: true,
	StyleSpotify: true,
	StyleApple:   true,
	StyleNetflix: true,
	StyleDisney:  true,
	StyleOpenAI:  true,
	StyleTidal:   true,
	StyleXbox:    true,
	StyleAmazon:  true,
}

func (s StyleKey) Valid() bool {
	return styleKeys[s]
}

type SortKey string

const (
	SortBySavings  SortKey = "savings"
	SortByName     SortKey = "product"
	SortByCategory SortKey = "category"
	SortByPrice    SortKey = "price"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortBySavings, SortByName, SortByCategory, SortByPrice:
		return true
	}
	return false
}

type VpnPlan string

const (
	VpnPlanMonthly VpnPlan = "monthly"
	VpnPlanYearly  VpnPlan = "yearly"
)

func (p VpnPlan) Valid() bool {
	return p == VpnPlanMonthly || p == VpnPlanYearly
}

type ViewMode string

const (
	ViewModeCompact ViewMode = "compact"
	ViewModeFull    ViewMode = "full"
)
