// internal/services/vpn_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/subscription-index/internal/models"
)

func TestGetProviders(t *testing.T) {
	ts := newTestServices(t)

	providers, err := ts.vpn.GetProviders()
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "cheap", providers[0].ID)

	// callers get their own copy
	providers[0].Name = "changed"
	again, err := ts.vpn.GetProviders()
	require.NoError(t, err)
	assert.Equal(t, "Cheap VPN", again[0].Name)
}

func TestCalculateWithProvider(t *testing.T) {
	ts := newTestServices(t)

	calc, err := ts.vpn.Calculate(CalculateRequest{
		SelectedProducts: []int{1, 2},
		ProviderID:       "cheap",
	})
	require.NoError(t, err)

	require.NotNil(t, calc.Provider)
	assert.Equal(t, "cheap", calc.Provider.ID)
	assert.Equal(t, models.VpnPlanYearly, calc.Plan)
	assert.Equal(t, 3.0, calc.MonthlyVpnCost)

	// Beta Music is not VPN friendly
	require.Len(t, calc.Recommendations, 1)
	assert.Equal(t, 1, calc.Recommendations[0].ProductID)
	assert.Equal(t, "India", calc.Recommendations[0].BestCountry.Country)
	assert.Equal(t, 10.0, calc.TotalCurrentCost)
	assert.Equal(t, 2.0, calc.TotalBestCost)
	assert.Equal(t, 8.0, calc.TotalSavings)
	assert.Equal(t, 5.0, calc.NetSavings)
	assert.Equal(t, 60.0, calc.AnnualNetSavings)
	assert.True(t, calc.Recommended)

	calc, err = ts.vpn.Calculate(CalculateRequest{
		SelectedProducts: []int{1},
		ProviderID:       "cheap",
		Plan:             models.VpnPlanMonthly,
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, calc.MonthlyVpnCost)
	assert.Equal(t, 2.0, calc.NetSavings)
}

func TestCalculateCostFallbacks(t *testing.T) {
	ts := newTestServices(t)

	manual := 9.0
	calc, err := ts.vpn.Calculate(CalculateRequest{
		SelectedProducts: []int{1},
		MonthlyVpnCost:   &manual,
	})
	require.NoError(t, err)
	assert.Nil(t, calc.Provider)
	assert.Equal(t, 9.0, calc.MonthlyVpnCost)
	assert.Equal(t, -1.0, calc.NetSavings)
	assert.False(t, calc.Recommended)

	calc, err = ts.vpn.Calculate(CalculateRequest{SelectedProducts: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 5.99, calc.MonthlyVpnCost)
	assert.InDelta(t, 2.01, calc.NetSavings, 1e-9)
}

func TestCalculateFollowsFilters(t *testing.T) {
	ts := newTestServices(t)

	// a selected product hidden by the search is not counted
	calc, err := ts.vpn.Calculate(CalculateRequest{
		ProductSearchParams: ProductSearchParams{Search: "beta"},
		SelectedProducts:    []int{1},
	})
	require.NoError(t, err)
	assert.Empty(t, calc.Recommendations)
	assert.Zero(t, calc.TotalSavings)
	assert.False(t, calc.Recommended)

	// from India there is nothing left to save
	calc, err = ts.vpn.Calculate(CalculateRequest{
		ProductSearchParams: ProductSearchParams{HomeCountry: "India"},
		SelectedProducts:    []int{1},
	})
	require.NoError(t, err)
	require.Len(t, calc.Recommendations, 1)
	assert.Equal(t, 2.0, calc.TotalCurrentCost)
	assert.Zero(t, calc.TotalSavings)
	assert.Zero(t, calc.BreakEvenPoint)
	assert.False(t, calc.Recommended)
}

func TestCalculateErrors(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.vpn.Calculate(CalculateRequest{ProviderID: "nope"})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	_, err = ts.vpn.Calculate(CalculateRequest{Plan: "weekly"})
	assert.Error(t, err)

	negative := -1.0
	_, err = ts.vpn.Calculate(CalculateRequest{MonthlyVpnCost: &negative})
	assert.Error(t, err)

	_, err = ts.vpn.Calculate(CalculateRequest{SelectedProducts: []int{0}})
	assert.Error(t, err)
}
