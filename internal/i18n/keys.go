// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Catalog
	KeyProductNotFound     = "product.not_found"
	KeyVpnProviderNotFound = "vpn_provider.not_found"
	KeyCatalogUnavailable  = "catalog.unavailable"

	// VPN calculator
	KeyVpnRecommended    = "vpn.recommended"
	KeyVpnNotRecommended = "vpn.not_recommended"
	KeyVpnNoSelection    = "vpn.no_selection"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Search
	KeySearchNoResults    = "search.no_results"
	KeySearchResultsFound = "search.results_found"

	// Server
	KeyServerInternalError = "server.internal_error"
	KeyServerRateLimited   = "server.rate_limited"
)
