package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/middleware"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type ArticleHandler struct {
	service service.ServiceInterface
}

func NewArticleHandler(svc service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// List - GET /api/v1/blog/articles?page=1&limit=10&category=&featured=&status=
func (h *ArticleHandler) List(c *gin.Context) {
	filter := model.ListFilter{
		Page:         parseIntDefault(c.Query("page"), 1),
		Limit:        parseIntDefault(c.Query("limit"), 10),
		CategorySlug: c.Query("category"),
		Status:       c.Query("status"),
	}
	// Limit is capped at the HTTP boundary; the service does not
	// enforce it.
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		filter.Featured = &featured
	}

	articles, total, err := h.service.List(c.Request.Context(), filter, middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	response.SuccessWithMeta(c, http.StatusOK, articles, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetBySlug - GET /api/v1/blog/articles/:slug
// Every successful fetch bumps the view counter.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, article)
}

// Create - POST /api/v1/admin/blog/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
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

// Update - PUT /api/v1/admin/blog/articles/:slugOrId
func (h *ArticleHandler) Update(c *gin.Context) {
	var req model.UpdateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("slugOrId"), &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/admin/blog/articles/:slugOrId
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slugOrId")); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
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
