// internal/tests/api_test.go
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/subscription-index/internal/catalog"
	"github.com/javajoker/subscription-index/internal/config"
	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/router"
	"github.com/javajoker/subscription-index/internal/services"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta map[string]any `json:"meta"`
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Catalog:     config.CatalogConfig{Source: config.CatalogSourceEmbedded},
		Pricing: config.PricingConfig{
			DefaultHomeCountry: "United States",
			DefaultVpnCost:     5.99,
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		Docs: config.DocsConfig{
			Enabled: true,
			SpecDir: "../../api",
			Title:   "Subscription Price Index API",
		},
		I18n: config.I18nConfig{DefaultLocale: "en"},
	}
}

type APITestSuite struct {
	suite.Suite
	router *router.Router
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	require.NoError(suite.T(), i18n.Initialize("en"))

	catalogService := services.NewCatalogService(catalog.EmbeddedSource{})
	require.NoError(suite.T(), catalogService.Reload(context.Background()))

	suite.router = router.Initialize(testConfig(), catalogService)
}

func (suite *APITestSuite) TearDownSuite() {
	suite.router.Close()
}

func (suite *APITestSuite) do(method, path string, body any, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	var reader *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(jsonData)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	suite.router.Engine.ServeHTTP(w, req)

	var response apiResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func (suite *APITestSuite) TestHealth() {
	w, _ := suite.do("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "healthy", body["status"])
	assert.Equal(suite.T(), "2025.06", body["catalog_version"])
	assert.Equal(suite.T(), "embedded", body["catalog_source"])
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
}

func (suite *APITestSuite) TestListProducts() {
	w, response := suite.do("GET", "/v1/products", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), "9", w.Header().Get("X-Total-Count"))

	var products []services.ProductView
	require.NoError(suite.T(), json.Unmarshal(response.Data, &products))
	require.Len(suite.T(), products, 9)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(suite.T(), products[i-1].MaxSavings, products[i].MaxSavings)
	}
	for _, p := range products {
		assert.Equal(suite.T(), "United States", p.BaseCountry)
	}

	assert.Equal(suite.T(), "United States", response.Meta["home_country"])
	assert.Equal(suite.T(), "2025.06", response.Meta["catalog_version"])
	assert.Equal(suite.T(), "Found 9 subscriptions", response.Meta["message"])
}

func (suite *APITestSuite) TestListProductsFiltered() {
	w, response := suite.do("GET", "/v1/products?search=spot&sort=price&home=India", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var products []services.ProductView
	require.NoError(suite.T(), json.Unmarshal(response.Data, &products))
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Spotify Premium", products[0].Name)
	assert.Equal(suite.T(), "India", products[0].BaseCountry)
	assert.Equal(suite.T(), 1.43, products[0].BasePrice)

	w, response = suite.do("GET", "/v1/products?tags=VPN%20Restricted,Music", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	require.NoError(suite.T(), json.Unmarshal(response.Data, &products))
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), 3, products[0].ID)
}

func (suite *APITestSuite) TestListProductsPagination() {
	w, response := suite.do("GET", "/v1/products?sort=product&page=2&limit=4", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "3", w.Header().Get("X-Total-Pages"))

	var products []services.ProductView
	require.NoError(suite.T(), json.Unmarshal(response.Data, &products))
	assert.Len(suite.T(), products, 4)

	w, response = suite.do("GET", "/v1/products?page=9", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	require.NoError(suite.T(), json.Unmarshal(response.Data, &products))
	assert.Empty(suite.T(), products)
}

func (suite *APITestSuite) TestListProductsNoResultsInSpanish() {
	w, response := suite.do("GET", "/v1/products?search=zzz", nil, "Accept-Language", "es-ES,es;q=0.9")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), i18n.T("es", i18n.KeySearchNoResults), response.Meta["message"])
}

func (suite *APITestSuite) TestListProductsInvalidSort() {
	w, response := suite.do("GET", "/v1/products?sort=popularity", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), response.Success)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", response.Error.Code)
}

func (suite *APITestSuite) TestGetProduct() {
	w, response := suite.do("GET", "/v1/products/5", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data struct {
		Product services.ProductView `json:"product"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &data))
	assert.Equal(suite.T(), "Disney+ Hotstar", data.Product.Name)
	assert.Equal(suite.T(), "United States", data.Product.BaseCountry)
	assert.Equal(suite.T(), len(data.Product.Prices), len(data.Product.Display.Prices))

	w, response = suite.do("GET", "/v1/products/999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Product not found", response.Error.Message)

	w, _ = suite.do("GET", "/v1/products/abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestLookups() {
	w, response := suite.do("GET", "/v1/countries", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var countries struct {
		Countries []string `json:"countries"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &countries))
	require.NotEmpty(suite.T(), countries.Countries)
	assert.Equal(suite.T(), "All", countries.Countries[0])
	assert.Contains(suite.T(), countries.Countries, "Turkey")

	w, response = suite.do("GET", "/v1/tags", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var tags struct {
		Tags []string `json:"tags"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &tags))
	assert.Contains(suite.T(), tags.Tags, "VPN Friendly")

	w, response = suite.do("GET", "/v1/home-countries", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var homes struct {
		HomeCountries []services.HomeCountry `json:"home_countries"`
		Default       string                 `json:"default"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &homes))
	assert.Len(suite.T(), homes.HomeCountries, 9)
	assert.Equal(suite.T(), "United States", homes.Default)

	w, response = suite.do("GET", "/v1/catalog", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), string(response.Data), `"version":"2025.06"`)
}

func (suite *APITestSuite) TestVpnProvidersAndCalculate() {
	w, response := suite.do("GET", "/v1/vpn/providers", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), string(response.Data), `"id":"surfshark"`)

	w, response = suite.do("POST", "/v1/vpn/calculate", map[string]any{
		"selected_products": []int{1, 2, 3},
		"vpn_provider":      "surfshark",
		"vpn_plan":          "yearly",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data struct {
		Calculation services.VpnCalculation `json:"calculation"`
		Message     string                  `json:"message"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &data))
	calc := data.Calculation
	assert.Equal(suite.T(), 2.49, calc.MonthlyVpnCost)
	// Apple Music is not VPN friendly
	assert.Len(suite.T(), calc.Recommendations, 2)
	assert.InDelta(suite.T(), 13.99+11.99, calc.TotalCurrentCost, 1e-9)
	assert.True(suite.T(), calc.Recommended)
	assert.True(suite.T(), strings.HasPrefix(data.Message, "A VPN saves you $"))
}

func (suite *APITestSuite) TestVpnCalculateErrors() {
	w, response := suite.do("POST", "/v1/vpn/calculate", map[string]any{"vpn_provider": "nope"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "VPN provider not found", response.Error.Message)

	w, response = suite.do("POST", "/v1/vpn/calculate", map[string]any{"vpn_plan": "weekly"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "VALIDATION_ERROR", response.Error.Code)

	w, _ = suite.do("POST", "/v1/vpn/calculate", "not an object")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestSessionView() {
	w, response := suite.do("POST", "/v1/session/view", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data struct {
		View       services.SessionView `json:"view"`
		VpnMessage string               `json:"vpn_message"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &data))
	assert.Equal(suite.T(), "United States", data.View.State.HomeCountry)
	assert.Len(suite.T(), data.View.Products, 9)
	assert.Equal(suite.T(), "Select VPN friendly services to see potential savings", data.VpnMessage)

	w, response = suite.do("POST", "/v1/session/view", map[string]any{
		"state":  data.View.State,
		"update": map[string]any{"toggle_product": 1, "toggle_tag": "Music"},
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	require.NoError(suite.T(), json.Unmarshal(response.Data, &data))
	assert.Equal(suite.T(), []int{1}, data.View.State.SelectedProducts)
	assert.Equal(suite.T(), []string{"Music"}, data.View.State.Filters.SelectedTags)
	for _, p := range data.View.Products {
		assert.Contains(suite.T(), []string(p.Tags), "Music")
	}
	assert.Len(suite.T(), data.View.Vpn.Recommendations, 1)

	w, response = suite.do("POST", "/v1/session/view", map[string]any{
		"update": map[string]any{"view_mode": "grid"},
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "VALIDATION_ERROR", response.Error.Code)
}

func (suite *APITestSuite) TestValidationMessagesAreLocalized() {
	w, response := suite.do("POST", "/v1/session/view", map[string]any{
		"state": map[string]any{"home_country": ""},
	}, "Accept-Language", "es")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", response.Error.Code)

	var details []struct {
		Field   string `json:"field"`
		Tag     string `json:"tag"`
		Message string `json:"message"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Error.Details, &details))
	require.Len(suite.T(), details, 1)
	assert.Equal(suite.T(), "required", details[0].Tag)
	assert.Equal(suite.T(), "homecountry es obligatorio", details[0].Message)

	w, response = suite.do("GET", "/v1/products/999", nil, "Accept-Language", "es")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Producto no encontrado", response.Error.Message)
}

func (suite *APITestSuite) TestSessionViewWithoutManualCost() {
	w, response := suite.do("POST", "/v1/session/view", map[string]any{
		"state":  map[string]any{"home_country": "United States", "selected_products": []int{1}},
		"update": map[string]any{},
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data struct {
		View services.SessionView `json:"view"`
	}
	require.NoError(suite.T(), json.Unmarshal(response.Data, &data))
	assert.Equal(suite.T(), 5.99, data.View.Vpn.MonthlyVpnCost)
	require.NotNil(suite.T(), data.View.State.ManualVpnCost)
	assert.Equal(suite.T(), 5.99, *data.View.State.ManualVpnCost)
}

func (suite *APITestSuite) TestDocs() {
	w, _ := suite.do("GET", "/docs", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Subscription Price Index API")
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func TestCatalogUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("en"))

	r := router.Initialize(testConfig(), services.NewCatalogService(catalog.EmbeddedSource{}))
	defer r.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/products", nil)
	r.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_UNAVAILABLE")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/health", nil)
	r.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("en"))

	catalogService := services.NewCatalogService(catalog.EmbeddedSource{})
	require.NoError(t, catalogService.Reload(context.Background()))

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	r := router.Initialize(cfg, catalogService)
	defer r.Close()

	codes := make([]int, 2)
	for i := range codes {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/v1/tags", nil)
		r.Engine.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
