package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type NewsletterHandler struct {
	service service.ServiceInterface
}

func NewNewsletterHandler(svc service.ServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{service: svc}
}

// Subscribe - POST /api/v1/newsletter/subscribe (public)
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	subscriber, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, subscriber)
}

// Unsubscribe - POST /api/v1/newsletter/unsubscribe (public)
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unsubscribed": true})
}

// List - GET /api/v1/admin/newsletter/subscribers
func (h *NewsletterHandler) List(c *gin.Context) {
	subscribers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, subscribers)
}
