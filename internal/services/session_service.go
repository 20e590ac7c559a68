// internal/services/session_service.go
package services

import (
	"fmt"

	"github.com/javajoker/subscription-index/internal/session"
	"github.com/javajoker/subscription-index/internal/utils"
)

type SessionService struct {
	productService *ProductService
	vpnService     *VpnService
	defaultVpnCost float64
}

// SessionViewRequest carries the client's current state (nil for a fresh
// visitor) and the change to apply to it.
type SessionViewRequest struct {
	State  *session.State `json:"state"`
	Update session.Update `json:"update"`
}

// SessionView is everything a page needs to render one state.
type SessionView struct {
	State         session.State  `json:"state"`
	Products      []ProductView  `json:"products"`
	Countries     []string       `json:"countries"`
	Tags          []string       `json:"tags"`
	HomeCountries []HomeCountry  `json:"home_countries"`
	Vpn           VpnCalculation `json:"vpn"`
}

func NewSessionService(productService *ProductService, vpnService *VpnService, defaultVpnCost float64) *SessionService {
	return &SessionService{
		productService: productService,
		vpnService:     vpnService,
		defaultVpnCost: defaultVpnCost,
	}
}

func (s *SessionService) DefaultState() session.State {
	return session.Default(s.productService.DefaultHomeCountry(), s.defaultVpnCost)
}

func (s *SessionService) View(req SessionViewRequest) (*SessionView, error) {
	if err := utils.ValidateStruct(req.Update); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	state := s.DefaultState()
	if req.State != nil {
		state = req.State.Normalize().WithVpnCost(s.defaultVpnCost)
	}
	next := session.Apply(state, req.Update)
	if err := utils.ValidateStruct(next); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	params := ProductSearchParams{
		HomeCountry: next.HomeCountry,
		Search:      next.Filters.SearchTerm,
		Country:     next.Filters.SelectedCountry,
		Tags:        next.Filters.SelectedTags,
		SortBy:      next.Filters.SortBy,
	}

	list, err := s.productService.SearchProducts(params)
	if err != nil {
		return nil, err
	}
	countries, err := s.productService.GetCountries()
	if err != nil {
		return nil, err
	}
	tags, err := s.productService.GetTags()
	if err != nil {
		return nil, err
	}
	homes, err := s.productService.GetHomeCountries()
	if err != nil {
		return nil, err
	}

	vpn, err := s.vpnService.Calculate(CalculateRequest{
		ProductSearchParams: params,
		SelectedProducts:    next.SelectedProducts,
		ProviderID:          next.VpnProvider,
		Plan:                next.VpnPlan,
		MonthlyVpnCost:      next.ManualVpnCost,
	})
	if err != nil {
		return nil, err
	}

	return &SessionView{
		State:         next,
		Products:      list.Products,
		Countries:     countries,
		Tags:          tags,
		HomeCountries: homes,
		Vpn:           *vpn,
	}, nil
}
