package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/middleware"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type JobHandler struct {
	service service.ServiceInterface
}

func NewJobHandler(svc service.ServiceInterface) *JobHandler {
	return &JobHandler{service: svc}
}

// List - GET /api/v1/jobs?status=
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.service.List(c.Request.Context(), c.Query("status"), middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

// GetByID - GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), id, middleware.GetLocale(c))
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Create - POST /api/v1/admin/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req model.CreateJobRequest
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

// Update - PUT /api/v1/admin/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req model.UpdateJobRequest
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

// Delete - DELETE /api/v1/admin/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
