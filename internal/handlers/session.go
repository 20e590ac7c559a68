// internal/handlers/session.go
package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/services"
	"github.com/javajoker/subscription-index/internal/utils"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// POST /session/view
// An empty body yields the default view of a fresh visitor.
func (h *SessionHandler) View(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SessionViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	view, err := h.sessionService.View(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"view":        view,
		"vpn_message": vpnMessage(lang, view.Vpn.VpnEconomics),
	})
}
