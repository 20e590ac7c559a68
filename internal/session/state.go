// internal/session/state.go

// Package session models the browsing state a client holds between
// requests. The server never stores it: a client sends its State with an
// Update and gets the next State back.
package session

import (
	"slices"

	"github.com/javajoker/subscription-index/internal/models"
)

type State struct {
	Filters          models.FilterState `json:"filters"`
	HomeCountry      string             `json:"home_country" validate:"required"`
	SelectedProducts []int              `json:"selected_products"`
	VpnProvider      string             `json:"vpn_provider,omitempty"`
	VpnPlan          models.VpnPlan     `json:"vpn_plan" validate:"omitempty,vpn_plan"`
	ManualVpnCost    *float64           `json:"manual_vpn_cost" validate:"omitempty,gte=0"`
	DarkMode         bool               `json:"dark_mode"`
	ViewMode         models.ViewMode    `json:"view_mode" validate:"omitempty,oneof=compact full"`
}

// Default is the state of a fresh visitor.
func Default(homeCountry string, vpnCost float64) State {
	return State{
		Filters:          models.DefaultFilterState(),
		HomeCountry:      homeCountry,
		SelectedProducts: []int{},
		VpnPlan:          models.VpnPlanYearly,
		ViewMode:         models.ViewModeFull,
	}.WithVpnCost(vpnCost)
}

// WithVpnCost fills in the manual VPN cost when s carries none.
func (s State) WithVpnCost(cost float64) State {
	if s.ManualVpnCost == nil {
		s.ManualVpnCost = &cost
	}
	return s
}

// Update is a partial change to a State. Nil fields are left alone; a nil
// SelectedTags or SelectedProducts slice means unchanged, an empty one
// clears the selection.
type Update struct {
	SearchTerm       *string          `json:"search_term,omitempty"`
	SelectedCountry  *string          `json:"selected_country,omitempty"`
	SelectedTags     []string         `json:"selected_tags,omitempty"`
	SortBy           *models.SortKey  `json:"sort_by,omitempty" validate:"omitempty,sort_key"`
	HomeCountry      *string          `json:"home_country,omitempty"`
	SelectedProducts []int            `json:"selected_products,omitempty"`
	VpnProvider      *string          `json:"vpn_provider,omitempty"`
	VpnPlan          *models.VpnPlan  `json:"vpn_plan,omitempty" validate:"omitempty,vpn_plan"`
	ManualVpnCost    *float64         `json:"manual_vpn_cost,omitempty" validate:"omitempty,gte=0"`
	DarkMode         *bool            `json:"dark_mode,omitempty"`
	ViewMode         *models.ViewMode `json:"view_mode,omitempty" validate:"omitempty,oneof=compact full"`

	// Actions, applied after the field changes above.
	ClearFilters  bool   `json:"clear_filters,omitempty"`
	ToggleTag     string `json:"toggle_tag,omitempty"`
	ToggleProduct *int   `json:"toggle_product,omitempty"`
}

// Apply returns the state that results from applying u to s. s is not
// modified.
func Apply(s State, u Update) State {
	next := s.clone()

	if u.ClearFilters {
		next.Filters = models.DefaultFilterState()
	}
	if u.SearchTerm != nil {
		next.Filters.SearchTerm = *u.SearchTerm
	}
	if u.SelectedCountry != nil {
		next.Filters.SelectedCountry = *u.SelectedCountry
	}
	if u.SelectedTags != nil {
		next.Filters.SelectedTags = slices.Clone(u.SelectedTags)
	}
	if u.SortBy != nil {
		next.Filters.SortBy = *u.SortBy
	}
	if u.HomeCountry != nil {
		next.HomeCountry = *u.HomeCountry
	}
	if u.SelectedProducts != nil {
		next.SelectedProducts = slices.Clone(u.SelectedProducts)
	}
	if u.VpnProvider != nil {
		next.VpnProvider = *u.VpnProvider
	}
	if u.VpnPlan != nil {
		next.VpnPlan = *u.VpnPlan
	}
	if u.ManualVpnCost != nil {
		cost := *u.ManualVpnCost
		next.ManualVpnCost = &cost
	}
	if u.DarkMode != nil {
		next.DarkMode = *u.DarkMode
	}
	if u.ViewMode != nil {
		next.ViewMode = *u.ViewMode
	}

	if u.ToggleTag != "" {
		next.Filters.SelectedTags = toggle(next.Filters.SelectedTags, u.ToggleTag)
	}
	if u.ToggleProduct != nil {
		next.SelectedProducts = toggle(next.SelectedProducts, *u.ToggleProduct)
	}

	return next.Normalize()
}

// Normalize fills zero values with their defaults. The manual VPN cost has
// no fixed default; see WithVpnCost.
func (s State) Normalize() State {
	if s.Filters.SelectedCountry == "" {
		s.Filters.SelectedCountry = models.AllCountries
	}
	if s.Filters.SelectedTags == nil {
		s.Filters.SelectedTags = []string{}
	}
	if s.Filters.SortBy == "" {
		s.Filters.SortBy = models.SortBySavings
	}
	if s.SelectedProducts == nil {
		s.SelectedProducts = []int{}
	}
	if s.VpnPlan == "" {
		s.VpnPlan = models.VpnPlanYearly
	}
	if s.ViewMode == "" {
		s.ViewMode = models.ViewModeFull
	}
	return s
}

func (s State) clone() State {
	out := s
	out.Filters.SelectedTags = slices.Clone(s.Filters.SelectedTags)
	out.SelectedProducts = slices.Clone(s.SelectedProducts)
	return out
}

func toggle[T comparable](items []T, item T) []T {
	if i := slices.Index(items, item); i >= 0 {
		return slices.Delete(slices.Clone(items), i, i+1)
	}
	return append(slices.Clone(items), item)
}
