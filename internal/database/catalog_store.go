// internal/database/catalog_store.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/subscription-index/internal/catalog"
	"github.com/javajoker/subscription-index/internal/models"
)

var ErrNoCatalogRelease = errors.New("no catalog release stored")

// CatalogStore keeps the catalog in Postgres. It satisfies catalog.Source.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) Name() string { return "postgres" }

// Load reads the latest release with every product, its prices and the VPN
// providers, and validates the result like any other source.
func (s *CatalogStore) Load(ctx context.Context) (*catalog.Dataset, error) {
	db := s.db.WithContext(ctx)

	var release models.CatalogRelease
	if err := db.Order("created_at DESC").First(&release).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCatalogRelease
		}
		return nil, fmt.Errorf("failed to load catalog release: %w", err)
	}

	var products []models.Product
	err := db.Preload("Prices", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var providers []models.VpnProvider
	if err := db.Order("id ASC").Find(&providers).Error; err != nil {
		return nil, fmt.Errorf("failed to load vpn providers: %w", err)
	}

	ds := &catalog.Dataset{
		Version:       release.Version,
		HomeCountries: release.HomeCountries,
		Products:      products,
		VpnProviders:  providers,
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Seed stores ds when the database holds no catalog yet.
func (s *CatalogStore) Seed(ctx context.Context, ds *catalog.Dataset) error {
	db := s.db.WithContext(ctx)

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount > 0 {
		logrus.WithField("products", productCount).Info("Catalog already seeded")
		return nil
	}

	return s.Replace(ctx, ds)
}

// Replace swaps the stored catalog for ds in one transaction.
func (s *CatalogStore) Replace(ctx context.Context, ds *catalog.Dataset) error {
	err := WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.PriceRecord{}, &models.Product{}, &models.VpnProvider{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}

		products := make([]models.Product, len(ds.Products))
		for i, p := range ds.Products {
			products[i] = p.Clone()
			for j := range products[i].Prices {
				products[i].Prices[j].ID = 0
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("failed to store products: %w", err)
			}
		}
		if len(ds.VpnProviders) > 0 {
			providers := append([]models.VpnProvider(nil), ds.VpnProviders...)
			if err := tx.Create(&providers).Error; err != nil {
				return fmt.Errorf("failed to store vpn providers: %w", err)
			}
		}

		release := models.CatalogRelease{Version: ds.Version, HomeCountries: ds.HomeCountries}
		if err := tx.Where(models.CatalogRelease{Version: ds.Version}).
			Assign(models.CatalogRelease{HomeCountries: ds.HomeCountries}).
			FirstOrCreate(&release).Error; err != nil {
			return fmt.Errorf("failed to store catalog release: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"version":   ds.Version,
		"products":  len(ds.Products),
		"providers": len(ds.VpnProviders),
	}).Info("Catalog stored")
	return nil
}
