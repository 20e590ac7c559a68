// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/javajoker/subscription-index/internal/catalog"
	"github.com/javajoker/subscription-index/internal/display"
	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/pricing"
	"github.com/javajoker/subscription-index/internal/utils"
)

type ProductService struct {
	catalogService     *CatalogService
	defaultHomeCountry string
}

// ProductSearchParams selects the products to show and the home country
// their savings are measured against.
type ProductSearchParams struct {
	HomeCountry string         `json:"home_country"`
	Search      string         `json:"search_term" validate:"max=100"`
	Country     string         `json:"selected_country"`
	Tags        []string       `json:"selected_tags"`
	SortBy      models.SortKey `json:"sort_by" validate:"omitempty,sort_key"`
}

func (p ProductSearchParams) Filters() models.FilterState {
	filters := models.FilterState{
		SearchTerm:      p.Search,
		SelectedCountry: p.Country,
		SelectedTags:    p.Tags,
		SortBy:          p.SortBy,
	}
	if filters.SelectedCountry == "" {
		filters.SelectedCountry = models.AllCountries
	}
	if filters.SelectedTags == nil {
		filters.SelectedTags = []string{}
	}
	if filters.SortBy == "" {
		filters.SortBy = models.SortBySavings
	}
	return filters
}

// ProductView is a product with its savings for the requested home country
// and the hints needed to draw it.
type ProductView struct {
	models.Product
	MaxSavings float64      `json:"max_savings"`
	Display    display.Card `json:"display"`
}

type ProductList struct {
	HomeCountry string             `json:"home_country"`
	Filters     models.FilterState `json:"filters"`
	Products    []ProductView      `json:"products"`
}

func NewProductService(catalogService *CatalogService, defaultHomeCountry string) *ProductService {
	return &ProductService{
		catalogService:     catalogService,
		defaultHomeCountry: defaultHomeCountry,
	}
}

func (s *ProductService) DefaultHomeCountry() string {
	return s.defaultHomeCountry
}

// SearchProducts recomputes savings for the home country, then filters and
// sorts the catalog.
func (s *ProductService) SearchProducts(params ProductSearchParams) (*ProductList, error) {
	if err := utils.ValidateStruct(params); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}

	home := s.homeCountry(params.HomeCountry)
	filters := params.Filters()
	filtered := s.visibleProducts(snap, home, filters)

	views := make([]ProductView, len(filtered))
	for i, p := range filtered {
		views[i] = newProductView(p, filters.SelectedCountry)
	}

	return &ProductList{
		HomeCountry: home,
		Filters:     filters,
		Products:    views,
	}, nil
}

// visibleProducts is the filtered, home-relative product list the VPN
// calculator works on as well.
func (s *ProductService) visibleProducts(snap *catalog.Snapshot, home string, filters models.FilterState) []models.Product {
	return pricing.ApplyFilters(pricing.RecomputeSavings(snap.Products, home), filters)
}

func (s *ProductService) GetProduct(id int, homeCountry string) (*ProductView, error) {
	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}

	product, ok := snap.Product(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}

	// the detail view lists every country
	p := pricing.RecomputeSavings([]models.Product{product}, s.homeCountry(homeCountry))[0]
	return &ProductView{
		Product:    p,
		MaxSavings: maxSavingsOrZero(p),
		Display:    display.CardFor(p, models.AllCountries, 0),
	}, nil
}

func (s *ProductService) GetCountries() ([]string, error) {
	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}
	return pricing.DistinctCountries(snap.Products), nil
}

func (s *ProductService) GetTags() ([]string, error) {
	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}
	return pricing.DistinctTags(snap.Products), nil
}

type HomeCountry struct {
	Name    string `json:"name"`
	Flag    string `json:"flag"`
	Default bool   `json:"default"`
}

func (s *ProductService) GetHomeCountries() ([]HomeCountry, error) {
	snap, err := s.catalogService.Snapshot()
	if err != nil {
		return nil, err
	}

	countries := make([]HomeCountry, len(snap.HomeCountries))
	for i, name := range snap.HomeCountries {
		countries[i] = HomeCountry{
			Name:    name,
			Flag:    display.CountryFlag(name),
			Default: name == s.defaultHomeCountry,
		}
	}
	return countries, nil
}

func (s *ProductService) homeCountry(requested string) string {
	if requested == "" {
		return s.defaultHomeCountry
	}
	return requested
}

func newProductView(p models.Product, selectedCountry string) ProductView {
	return ProductView{
		Product:    p,
		MaxSavings: maxSavingsOrZero(p),
		Display:    display.CardFor(p, selectedCountry, display.PricesToShow),
	}
}

func maxSavingsOrZero(p models.Product) float64 {
	if len(p.Prices) == 0 {
		return 0
	}
	return pricing.MaxSavings(p)
}
