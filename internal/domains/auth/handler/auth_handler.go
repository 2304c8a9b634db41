package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(svc service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login - POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
