package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/middleware"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// GetAll - GET /api/v1/authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, authors)
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, author)
}

// Create - POST /api/v1/admin/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
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

// Update - PUT /api/v1/admin/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/admin/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
