package employee

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

// GetAll serves GET /employees. With ?aggregate=true the rows are grouped by
// (name, position) for the payslip table; otherwise raw shift rows, id DESC.
// Both shapes are bare arrays.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("aggregate") == "true" {
		rows, err := h.repo.FindAggregated(ctx)
		if err != nil {
			h.logger.Error("aggregate employees failed", zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch employees", err.Error())
			return
		}
		response.JSON(c, http.StatusOK, rows)
		return
	}

	employees, err := h.repo.FindAll(ctx)
	if err != nil {
		h.logger.Error("list employees failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch employees", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, employees)
}

// Create serves POST /employees: plain insert with an auto-increment id.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	e := &Employee{
		Name:     *req.Name,
		Position: *req.Position,
		WorkDate: *req.WorkDate,
		TimeIn:   *req.TimeIn,
		TimeOut:  *req.TimeOut,
		Earnings: *req.Earnings,
	}
	if err := h.repo.Create(c.Request.Context(), e); err != nil {
		h.logger.Error("create employee failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create employee record", err.Error())
		return
	}

	h.logger.Info("employee record created", zap.Int("id", e.ID), zap.String("name", e.Name))
	response.JSON(c, http.StatusOK, gin.H{"success": true, "id": e.ID})
}

// CreateWithGeneratedID serves POST /new-employee: same row shape, but the
// surrogate key is drawn from the 5-digit id space instead of auto-increment.
func (h *Handler) CreateWithGeneratedID(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "activerecords")
	if err != nil {
		h.logger.Error("generate employee id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to insert new employee", err.Error())
		return
	}

	e := &Employee{
		ID:       id,
		Name:     *req.Name,
		Position: *req.Position,
		WorkDate: *req.WorkDate,
		TimeIn:   *req.TimeIn,
		TimeOut:  *req.TimeOut,
		Earnings: *req.Earnings,
	}
	if err := h.repo.Create(ctx, e); err != nil {
		h.logger.Error("insert new employee failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to insert new employee", err.Error())
		return
	}

	h.logger.Info("new employee inserted", zap.Int("id", id), zap.String("name", e.Name))
	response.JSON(c, http.StatusOK, gin.H{"success": true, "id": id})
}

// Lookup serves GET /employee-lookup?id=NNNNN.
func (h *Handler) Lookup(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "Employee ID is required")
		return
	}

	id, _ := strconv.Atoi(raw)
	if !randomid.InRange(id) {
		response.Error(c, http.StatusBadRequest, "Employee ID must be a 5-digit number (10000-99999)")
		return
	}

	e, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.JSON(c, http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Employee ID not found",
				"message": fmt.Sprintf("No employee found with ID: %d", id),
			})
			return
		}
		h.logger.Error("employee lookup failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to look up employee", err.Error())
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "employee": e})
}

// Delete serves DELETE /employees: soft-delete-by-move into deletedrecords.
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Employee ID is required")
		return
	}

	ctx := c.Request.Context()
	e, err := h.repo.FindByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Employee not found")
			return
		}
		h.logger.Error("fetch employee for delete failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete employee", err.Error())
		return
	}

	if err := h.repo.MoveToDeleted(ctx, e); err != nil {
		h.logger.Error("move employee to deletedrecords failed", zap.Int("id", e.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to insert into deletedrecords", err.Error())
		return
	}

	h.logger.Info("employee moved to deletedrecords", zap.Int("id", e.ID))
	response.JSON(c, http.StatusOK, gin.H{"success": true, "moved_id": e.ID})
}
