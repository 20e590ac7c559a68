// internal/catalog/dataset.go

// Package catalog loads the subscription price dataset, validates it and
// turns it into immutable snapshots the services read from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/utils"
)

var ErrInvalidDataset = errors.New("invalid catalog dataset")

// Dataset is the on-disk shape of the catalog.
type Dataset struct {
	Version       string               `yaml:"version" validate:"required"`
	HomeCountries []string             `yaml:"home_countries" validate:"required,min=1,unique,dive,required"`
	Products      []models.Product     `yaml:"products" validate:"required,min=1,dive"`
	VpnProviders  []models.VpnProvider `yaml:"vpn_providers" validate:"dive"`
}

// Parse decodes a YAML dataset and validates it.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	ds.normalize()
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) normalize() {
	for i := range ds.Products {
		if ds.Products[i].Style == "" {
			ds.Products[i].Style = models.StyleGeneric
		}
		if ds.Products[i].Tags == nil {
			ds.Products[i].Tags = []string{}
		}
	}
}

// Validate checks struct constraints and the cross-record rules the struct
// tags cannot express. Every problem found is reported in one error.
func (ds *Dataset) Validate() error {
	var errs []string

	if err := utils.ValidateStruct(ds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				errs = append(errs, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	productIDs := make(map[int]bool, len(ds.Products))
	for i, p := range ds.Products {
		if productIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("products[%d]: duplicate id %d", i, p.ID))
		}
		productIDs[p.ID] = true

		if !p.Style.Valid() {
			errs = append(errs, fmt.Sprintf("products[%d]: unknown style %q", i, p.Style))
		}

		countries := make(map[string]bool, len(p.Prices))
		for j, price := range p.Prices {
			if countries[price.Country] {
				errs = append(errs, fmt.Sprintf("products[%d].prices[%d]: duplicate country %q", i, j, price.Country))
			}
			countries[price.Country] = true
		}
	}

	providerIDs := make(map[string]bool, len(ds.VpnProviders))
	for i, v := range ds.VpnProviders {
		if providerIDs[v.ID] {
			errs = append(errs, fmt.Sprintf("vpn_providers[%d]: duplicate id %q", i, v.ID))
		}
		providerIDs[v.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(errs, "; "))
	}
	return nil
}
