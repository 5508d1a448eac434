package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/service"
)

func (h *Handler) praisesGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Praises())
}

func (h *Handler) praisesCreate(c *gin.Context) {
	var input dto.CreatePraiseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	created, err := h.services.Praise.Send(c.Request.Context(), input.Message)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, verr.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, dto.NewBasicResponse(false, msgSystemError))
		return
	}

	c.JSON(http.StatusCreated, created)
}
