package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/service"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/response"
)

type FinanceHandler struct {
	service service.ServiceInterface
}

func NewFinanceHandler(svc service.ServiceInterface) *FinanceHandler {
	return &FinanceHandler{service: svc}
}

// List - GET /api/v1/admin/finance/entries?from=&to=
func (h *FinanceHandler) List(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.service.List(c.Request.Context(), from, to)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// Create - POST /api/v1/admin/finance/entries
func (h *FinanceHandler) Create(c *gin.Context) {
	var req model.CreateEntryRequest
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

// Delete - DELETE /api/v1/admin/finance/entries/:id
func (h *FinanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Summary - GET /api/v1/admin/finance/summary?from=&to=
func (h *FinanceHandler) Summary(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	summaries, err := h.service.MonthlySummaries(c.Request.Context(), from, to)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}
	response.Success(c, http.StatusOK, summaries)
}

// Export - GET /api/v1/admin/finance/export?from=&to=
func (h *FinanceHandler) Export(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.service.Export(c.Request.Context(), from, to)
	if err != nil {
		response.DomainError(c, model.ToHTTPStatus(err), err)
		return
	}

	filename := fmt.Sprintf("finance-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "failed to write export")
	}
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = time.Parse("2006-01-02", s); err != nil {
			return from, to, fmt.Errorf("from must be YYYY-MM-DD")
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse("2006-01-02", s); err != nil {
			return from, to, fmt.Errorf("to must be YYYY-MM-DD")
		}
	}
	return from, to, nil
}
