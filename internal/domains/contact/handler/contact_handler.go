package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type ContactHandler struct {
	service service.ServiceInterface
}

func NewContactHandler(svc service.ServiceInterface) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Create - POST /api/v1/contact (public)
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List - GET /api/v1/admin/contact?page=1&limit=20&status=
func (h *ContactHandler) List(c *gin.Context) {
	filter := model.ListFilter{
		Page:   parseIntDefault(c.Query("page"), 1),
		Limit:  parseIntDefault(c.Query("limit"), 20),
		Status: c.Query("status"),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	messages, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, messages, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetByID - GET /api/v1/admin/contact/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	message, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, message)
}

// UpdateStatus - PATCH /api/v1/admin/contact/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/admin/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Export - GET /api/v1/admin/contact/export
// Streams the inbox as an xlsx download.
func (h *ContactHandler) Export(c *gin.Context) {
	f, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}

	filename := fmt.Sprintf("contact-messages-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "failed to write export")
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}
