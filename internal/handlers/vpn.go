// internal/handlers/vpn.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/models"
	"github.com/javajoker/subscription-index/internal/services"
	"github.com/javajoker/subscription-index/internal/utils"
)

type VpnHandler struct {
	vpnService *services.VpnService
}

func NewVpnHandler(vpnService *services.VpnService) *VpnHandler {
	return &VpnHandler{vpnService: vpnService}
}

// GET /vpn/providers
func (h *VpnHandler) GetProviders(c *gin.Context) {
	providers, err := h.vpnService.GetProviders()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"providers": providers,
	})
}

// POST /vpn/calculate
func (h *VpnHandler) Calculate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	calc, err := h.vpnService.Calculate(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"calculation": calc,
		"message":     vpnMessage(lang, calc.VpnEconomics),
	})
}

// vpnMessage is the one-line verdict shown under the calculator.
func vpnMessage(lang string, economics models.VpnEconomics) string {
	switch {
	case len(economics.Recommendations) == 0:
		return i18n.T(lang, i18n.KeyVpnNoSelection)
	case economics.Recommended:
		return i18n.T(lang, i18n.KeyVpnRecommended, "$"+decimal.NewFromFloat(economics.NetSavings).StringFixed(2))
	default:
		return i18n.T(lang, i18n.KeyVpnNotRecommended)
	}
}
