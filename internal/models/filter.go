// internal/models/filter.go
package models

// FilterState selects and orders catalog entries.
type FilterState struct {
	SearchTerm      string   `json:"search_term"`
	SelectedCountry string   `json:"selected_country"`
	SelectedTags    []string `json:"selected_tags"`
	SortBy          SortKey  `json:"sort_by" validate:"omitempty,sort_key"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		SearchTerm:      "",
		SelectedCountry: AllCountries,
		SelectedTags:    []string{},
		SortBy:          SortBySavings,
	}
}

// IsNoop reports whether the state keeps every product.
func (f FilterState) IsNoop() bool {
	return f.SearchTerm == "" && (f.SelectedCountry == "" || f.SelectedCountry == AllCountries) && len(f.SelectedTags) == 0
}
