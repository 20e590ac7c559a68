// internal/services/vpn_service.go
package services

import (
	"fmt"

	"github.com/javajoker/subscription-index/internal/catalog"
	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/pricing"
	"github.com/javajoker/subscription-index/internal/utils"
)

type VpnService struct {
	catalogService *CatalogService
	productService *ProductService
	defaultVpnCost float64
}

// CalculateRequest asks for the VPN economics of the selected products
// among those matching the search parameters. The monthly cost comes from
// ProviderID and Plan when a provider is named, from MonthlyVpnCost
// otherwise, and falls back to the configured default.
type CalculateRequest struct {
	ProductSearchParams
	SelectedProducts []int          `json:"selected_products" validate:"dive,gt=0"`
	ProviderID       string         `json:"vpn_provider"`
	Plan             models.VpnPlan `json:"vpn_plan" validate:"omitempty,vpn_plan"`
	MonthlyVpnCost   *float64       `json:"monthly_vpn_cost" validate:"omitempty,gte=0"`
}

type VpnCalculation struct {
	Provider *models.VpnProvider `json:"provider,omitempty"`
	Plan     models.VpnPlan      `json:"plan"`
	models.VpnEconomics
}

func NewVpnService(catalogService *CatalogService, productService *ProductService, defaultVpnCost float64) *VpnService {
	return &VpnService{
		catalogService: catalogService,
		productService: productService,
		defaultVpnCost: defaultVpnCost,
	}
}

func (s *VpnService) GetProviders() ([]models.VpnProvider, error) {
	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}
	return append([]models.VpnProvider{}, snap.VpnProviders...), nil
}

func (s *VpnService) Calculate(req CalculateRequest) (*VpnCalculation, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}

	plan := req.Plan
	if plan == "" {
		plan = models.VpnPlanYearly
	}

	cost, provider, err := s.resolveMonthlyCost(snap, req.ProviderID, plan, req.MonthlyVpnCost)
	if err != nil {
		return nil, err
	}

	home := s.productService.homeCountry(req.HomeCountry)
	visible := s.productService.visibleProducts(snap, home, req.Filters())

	return &VpnCalculation{
		Provider:     provider,
		Plan:         plan,
		VpnEconomics: pricing.EvaluateVpnEconomics(req.SelectedProducts, visible, cost),
	}, nil
}

func (s *VpnService) resolveMonthlyCost(snap *catalog.Snapshot, providerID string, plan models.VpnPlan, manual *float64) (float64, *models.VpnProvider, error) {
	if providerID != "" {
		provider, ok := snap.Provider(providerID)
		if !ok {
			return 0, nil, fmt.Errorf("provider %q: %w", providerID, ErrProviderNotFound)
		}
		return provider.MonthlyCost(plan), &provider, nil
	}
	if manual != nil {
		return *manual, nil, nil
	}
	return s.defaultVpnCost, nil, nil
}
