package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/service"
)

const (
	msgUploadRejected = "upload rejected"
	msgSystemError    = "system error, retry later"
)

// submitError maps one failed submission attempt onto the response the page
// shows. No branch retries anything; every failure waits for the user.
func (h *Handler) submitError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"details": verr.Error(),
			"fields":  verr.Fields,
			"focus":   verr.First(),
		})
		return
	}

	if errors.Is(err, backend.ErrPayloadTooLarge) {
		limit := humanize.IBytes(uint64(h.site.MaxUploadBytes))
		c.JSON(http.StatusRequestEntityTooLarge,
			dto.NewBasicResponse(false, fmt.Sprintf("%s: the file exceeds the %s limit", msgUploadRejected, limit)))
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		details := apiErr.Detail
		if details == "" {
			details = msgUploadRejected
		}
		status := apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, dto.NewBasicResponse(false, details))
		return
	}

	// transport failure: the backend never answered
	h.logger.Sugar().Errorf("submission transport failure: %s", err.Error())
	c.JSON(http.StatusBadGateway, dto.NewBasicResponse(false, msgSystemError))
}
