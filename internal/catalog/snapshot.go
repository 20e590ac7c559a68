// internal/catalog/snapshot.go
package catalog

import (
	"time"

	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/pricing"
)

// Snapshot is one loaded version of the catalog. It is never modified after
// NewSnapshot returns; a reload builds a new one.
type Snapshot struct {
	Version       string
	Source        string
	LoadedAt      time.Time
	HomeCountries []string
	Products      []models.Product
	VpnProviders  []models.VpnProvider
}

// NewSnapshot prepares a dataset for serving: savings are computed against
// each product's own base country.
func NewSnapshot(ds *Dataset, source string) *Snapshot {
	return &Snapshot{
		Version:       ds.Version,
		Source:        source,
		LoadedAt:      time.Now().UTC(),
		HomeCountries: append([]string(nil), ds.HomeCountries...),
		Products:      pricing.InitialSavings(ds.Products),
		VpnProviders:  append([]models.VpnProvider(nil), ds.VpnProviders...),
	}
}

func (s *Snapshot) Product(id int) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

func (s *Snapshot) Provider(id string) (models.VpnProvider, bool) {
	for _, v := range s.VpnProviders {
		if v.ID == id {
			return v, true
		}
	}
	return models.VpnProvider{}, false
}

// IsHomeCountry reports whether country is one of the selectable homes.
func (s *Snapshot) IsHomeCountry(country string) bool {
	for _, c := range s.HomeCountries {
		if c == country {
			return true
		}
	}
	return false
}
