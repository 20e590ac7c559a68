// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/subscription-index/internal/i18n"
	"github.com/javajoker/subscription-index/internal/services"
	"github.com/javajoker/subscription-index/internal/utils"
)

// respondWithError maps service errors onto the API envelope.
func respondWithError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(verrs))
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, services.ErrProviderNotFound):
		utils.NotFoundResponse(c, i18n.KeyVpnProviderNotFound)
	case errors.Is(err, services.ErrCatalogUnavailable):
		utils.ServiceUnavailableResponse(c)
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": utils.GetRequestIDFromContext(c),
			"path":       c.FullPath(),
		}).WithError(err).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}
