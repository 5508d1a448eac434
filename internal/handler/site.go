package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/dto"
)

func (h *Handler) siteGet(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SiteResponse{
		Variant:        string(h.theme.Variant),
		Palette:        h.theme.Palette,
		Copy:           h.theme.Copy,
		Policy:         h.theme.Policy,
		PraiseWindow:   h.site.PraiseWindow,
		MaxUploadBytes: h.site.MaxUploadBytes,
	})
}
