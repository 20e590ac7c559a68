// internal/services/fixtures_test.go
package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javajoker/subscription-index/internal/catalog"
)

const testCatalog = `
version: "t1"
home_countries: [United States, India]
products:
  - id: 1
    product: Alpha Video
    category: Streaming
    style: youtube
    tags: [Video, VPN Friendly]
    base_price: 10
    base_currency: USD
    base_country: United States
    vpn_friendly: true
    prices:
      - { country: United States, price: 10, currency: USD }
      - { country: India, price: 2, currency: USD }
  - id: 2
    product: Beta Music
    category: Music
    tags: [Music]
    base_price: 8
    base_currency: USD
    base_country: United States
    vpn_friendly: false
    prices:
      - { country: United States, price: 8, currency: USD }
      - { country: India, price: 4, currency: USD }
vpn_providers:
  - id: cheap
    name: Cheap VPN
    monthly_price: 6
    yearly_price: 3
    yearly_discount: 50
    rating: 4.5
`

// stubSource serves a parsed dataset until failWith is set.
type stubSource struct {
	mu       sync.Mutex
	data     string
	failWith error
	loads    int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(ctx context.Context) (*catalog.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return catalog.Parse([]byte(s.data))
}

func (s *stubSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

type testServices struct {
	source  *stubSource
	catalog *CatalogService
	product *ProductService
	vpn     *VpnService
	session *SessionService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	source := &stubSource{data: testCatalog}
	catalogService := NewCatalogService(source)
	require.NoError(t, catalogService.Reload(context.Background()))

	productService := NewProductService(catalogService, "United States")
	vpnService := NewVpnService(catalogService, productService, 5.99)

	return &testServices{
		source:  source,
		catalog: catalogService,
		product: productService,
		vpn:     vpnService,
		session: NewSessionService(productService, vpnService, 5.99),
	}
}

func productIDs(views []ProductView) []int {
	ids := make([]int, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}
