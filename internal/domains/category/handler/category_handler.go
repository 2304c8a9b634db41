package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/middleware"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type CategoryHandler struct {
	service service.ServiceInterface
}

func NewCategoryHandler(svc service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// GetAll - GET /api/v1/blog/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetAll(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// GetByID - GET /api/v1/blog/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	category, err := h.service.GetByID(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// Create - POST /api/v1/admin/blog/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
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

// Update - PUT /api/v1/admin/blog/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req model.UpdateCategoryRequest
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

// Delete - DELETE /api/v1/admin/blog/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
