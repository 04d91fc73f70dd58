package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.PersonalService }

func NewAuthHandler(svc service.PersonalService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
