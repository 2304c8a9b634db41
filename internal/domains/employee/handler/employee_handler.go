package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type EmployeeHandler struct {
	service service.ServiceInterface
}

func NewEmployeeHandler(svc service.ServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

// GetAll - GET /api/v1/admin/employees
func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, employees)
}

// Create - POST /api/v1/admin/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// Delete - DELETE /api/v1/admin/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid employee id")
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListEntries - GET /api/v1/admin/employees/:id/time-entries
func (h *EmployeeHandler) ListEntries(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid employee id")
		return
	}

	entries, err := h.service.ListEntries(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// CreateEntry - POST /api/v1/admin/employees/:id/time-entries
func (h *EmployeeHandler) CreateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid employee id")
		return
	}

	var req model.CreateTimeEntryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.CreateEntry(c.Request.Context(), id, &req)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// DeleteEntry - DELETE /api/v1/admin/time-entries/:id
func (h *EmployeeHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Rollups - GET /api/v1/admin/employees/:id/rollups
func (h *EmployeeHandler) Rollups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid employee id")
		return
	}

	rollups, err := h.service.Rollups(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, rollups)
}
