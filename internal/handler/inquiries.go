package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/service"
)

func (h *Handler) inquiriesCreate(c *gin.Context) {
	var input dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Inquiry.Send(c.Request.Context(), input); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":      false,
				"details": verr.Error(),
				"fields":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadGateway, dto.NewBasicResponse(false, msgSystemError))
		return
	}

	c.JSON(http.StatusCreated, dto.NewBasicResponse(true, "inquiry received"))
}

func (h *Handler) deletionRequestsCreate(c *gin.Context) {
	var input dto.DeletionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Inquiry.RequestDeletion(c.Request.Context(), input); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, verr.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, dto.NewBasicResponse(false, msgSystemError))
		return
	}

	// the takedown itself is processed by a human; the feed does not change
	c.JSON(http.StatusAccepted, dto.NewBasicResponse(true, "deletion request received, an operator will review it"))
}
