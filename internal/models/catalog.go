// internal/models/catalog.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// CatalogRelease records a dataset version stored in the database together
// with the selectable home countries of that version.
type CatalogRelease struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Version       string         `json:"version" gorm:"size:50;not null;uniqueIndex"`
	HomeCountries pq.StringArray `json:"home_countries" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"created_at"`
}
