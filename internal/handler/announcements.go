package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/dto"
)

// the board shows the latest announcement plus up to five older ones
const announcementHistoryLen = 5

func (h *Handler) announcementsGet(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewAnnouncementsResponse(h.store.Announcements(), announcementHistoryLen))
}
