// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product is one subscription service with its per-country price table.
// BasePrice, BaseCountry and BaseCurrency mirror the price record of the
// current home country.
type Product struct {
	ID           int            `json:"id" yaml:"id" gorm:"primaryKey;autoIncrement:false" validate:"required,gt=0"`
	Name         string         `json:"product" yaml:"product" gorm:"size:255;not null" validate:"required,max=255"`
	Category     string         `json:"category" yaml:"category" gorm:"size:100;index" validate:"required,max=100"`
	Style        StyleKey       `json:"style" yaml:"style" gorm:"type:varchar(30);default:'generic'"`
	Tags         pq.StringArray `json:"tags" yaml:"tags" gorm:"type:text[]"`
	BasePrice    float64        `json:"base_price" yaml:"base_price" gorm:"type:decimal(10,2)"`
	BaseCurrency string         `json:"base_currency" yaml:"base_currency" gorm:"size:3" validate:"omitempty,len=3"`
	BaseCountry  string         `json:"base_country" yaml:"base_country" gorm:"size:100"`
	VpnFriendly  bool           `json:"vpn_friendly" yaml:"vpn_friendly" gorm:"default:false"`

	// Relationships
	Prices []PriceRecord `json:"prices" yaml:"prices" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" validate:"required,min=1,unique=Country,dive"`
}

// PriceRecord is the price of a product in one country. Savings is derived
// and never stored.
type PriceRecord struct {
	ID        uint    `json:"-" yaml:"-" gorm:"primaryKey"`
	ProductID int     `json:"-" yaml:"-" gorm:"not null;uniqueIndex:idx_product_prices_product_country"`
	Country   string  `json:"country" yaml:"country" gorm:"size:100;not null;uniqueIndex:idx_product_prices_product_country" validate:"required,max=100"`
	Price     float64 `json:"price" yaml:"price" gorm:"type:decimal(10,2);not null" validate:"gte=0"`
	Currency  string  `json:"currency" yaml:"currency" gorm:"size:3;not null" validate:"required,len=3"`
	Savings   float64 `json:"savings" yaml:"-" gorm:"-"`
	Note      string  `json:"note,omitempty" yaml:"note,omitempty" gorm:"type:text"`
}

func (PriceRecord) TableName() string { return "product_prices" }

// Clone returns a deep copy so derived catalogs never share slices with the
// snapshot they were computed from.
func (p Product) Clone() Product {
	out := p
	if p.Tags != nil {
		out.Tags = append(pq.StringArray(nil), p.Tags...)
	}
	if p.Prices != nil {
		out.Prices = append([]PriceRecord(nil), p.Prices...)
	}
	return out
}

// PriceFor returns the record for country, if any.
func (p Product) PriceFor(country string) (PriceRecord, bool) {
	for _, price := range p.Prices {
		if price.Country == country {
			return price, true
		}
	}
	return PriceRecord{}, false
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
