// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/subscription-index/internal/catalog"
)

var (
	ErrCatalogUnavailable = errors.New("catalog not loaded")
	ErrProductNotFound    = errors.New("product not found")
	ErrProviderNotFound   = errors.New("vpn provider not found")
)

// CatalogService holds the current catalog snapshot. Readers never block:
// a reload builds a new snapshot and swaps it in.
type CatalogService struct {
	source   catalog.Source
	snapshot atomic.Pointer[catalog.Snapshot]
	reloadMu sync.Mutex
}

func NewCatalogService(source catalog.Source) *CatalogService {
	return &CatalogService{source: source}
}

// Reload loads the source again. On failure the current snapshot stays.
func (s *CatalogService) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	ds, err := s.source.Load(ctx)
	if err != nil {
		logrus.WithError(err).WithField("source", s.source.Name()).Error("Failed to load catalog")
		return fmt.Errorf("failed to load catalog from %s: %w", s.source.Name(), err)
	}

	snap := catalog.NewSnapshot(ds, s.source.Name())
	previous := s.snapshot.Swap(snap)

	fields := logrus.Fields{
		"source":    snap.Source,
		"version":   snap.Version,
		"products":  len(snap.Products),
		"providers": len(snap.VpnProviders),
	}
	if previous != nil {
		fields["previous_version"] = previous.Version
	}
	logrus.WithFields(fields).Info("Catalog loaded")
	return nil
}

func (s *CatalogService) Snapshot() (*catalog.Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogUnavailable
	}
	return snap, nil
}

func (s *CatalogService) SourceName() string {
	return s.source.Name()
}
