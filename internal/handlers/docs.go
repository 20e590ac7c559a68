// internal/handlers/docs.go
package handlers

import (
	"net/http"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/gin-gonic/gin"

	"github.com/javajoker/subscription-index/internal/utils"
)

type DocsHandler struct {
	specDir string
	title   string
}

func NewDocsHandler(specDir, title string) *DocsHandler {
	return &DocsHandler{specDir: specDir, title: title}
}

// GET /docs
func (h *DocsHandler) Reference(c *gin.Context) {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir(h.specDir),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle(h.title),
		),
	)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
