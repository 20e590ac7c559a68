// internal/models/vpn.go
package models

import (
	"github.com/lib/pq"
)

// VpnProvider is a VPN subscription offer. YearlyPrice is the per-month price
// when billed yearly.
type VpnProvider struct {
	ID                 string         `json:"id" yaml:"id" gorm:"primaryKey;size:50" validate:"required,max=50"`
	Name               string         `json:"name" yaml:"name" gorm:"size:100;not null" validate:"required"`
	Logo               string         `json:"logo" yaml:"logo" gorm:"size:255"`
	MonthlyPrice       float64        `json:"monthly_price" yaml:"monthly_price" gorm:"type:decimal(10,2);not null" validate:"gt=0"`
	YearlyPrice        float64        `json:"yearly_price" yaml:"yearly_price" gorm:"type:decimal(10,2);not null" validate:"gt=0"`
	YearlyDiscount     int            `json:"yearly_discount" yaml:"yearly_discount" validate:"gte=0,lte=100"`
	Link               string         `json:"link" yaml:"link" gorm:"size:255" validate:"omitempty,url"`
	Features           pq.StringArray `json:"features" yaml:"features" gorm:"type:text[]"`
	Rating             float64        `json:"rating" yaml:"rating" gorm:"type:decimal(3,2)" validate:"gte=0,lte=5"`
	Countries          int            `json:"countries" yaml:"countries"`
	Simultaneous       int            `json:"simultaneous" yaml:"simultaneous"`
	MoneyBackGuarantee int            `json:"money_back_guarantee" yaml:"money_back_guarantee"` // days
	Popular            bool           `json:"popular" yaml:"popular" gorm:"default:false"`
}

// MonthlyCost is the effective monthly cost of the provider on plan.
func (v VpnProvider) MonthlyCost(plan VpnPlan) float64 {
	if plan == VpnPlanMonthly {
		return v.MonthlyPrice
	}
	return v.YearlyPrice
}

type VpnRecommendation struct {
	ProductID      int         `json:"product_id"`
	Product        string      `json:"product"`
	Style          StyleKey    `json:"style"`
	BasePrice      float64     `json:"base_price"`
	BestPrice      float64     `json:"best_price"`
	BestCountry    PriceRecord `json:"best_country"`
	Savings        float64     `json:"savings"`
	SavingsPercent float64     `json:"savings_percent"`
}

// VpnEconomics aggregates the selected products' current versus best
// available cost, net of the VPN subscription.
type VpnEconomics struct {
	MonthlyVpnCost   float64             `json:"monthly_vpn_cost"`
	TotalCurrentCost float64             `json:"total_current_cost"`
	TotalBestCost    float64             `json:"total_best_cost"`
	TotalSavings     float64             `json:"total_savings"`
	NetSavings       float64             `json:"net_savings"`
	AnnualNetSavings float64             `json:"annual_net_savings"`
	BreakEvenPoint   float64             `json:"break_even_point"`
	Recommended      bool                `json:"recommended"`
	Recommendations  []VpnRecommendation `json:"recommendations"`
}
