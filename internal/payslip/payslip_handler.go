package payslip

import (
	"errors"
	"net/http"
	"time"

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
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	payslips, err := h.repo.FindAll(c.Request.Context(), c.Query("employee"))
	if err != nil {
		h.logger.Error("list payslips failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch payslips", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, payslips)
}

// Generate builds a payslip from the employee's activerecords rollup.
func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeName == nil {
		response.Error(c, http.StatusBadRequest, "Employee name is required")
		return
	}

	ctx := c.Request.Context()
	summary, err := h.repo.SummarizeEmployee(ctx, *req.EmployeeName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "No active records found for this employee")
			return
		}
		h.logger.Error("summarize employee failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create payslip record", err.Error())
		return
	}

	p := &Payslip{
		EmployeeName: summary.Name,
		Position:     summary.Position,
		Earnings:     summary.TotalEarnings,
	}
	if err := h.repo.CreateGenerated(ctx, p); err != nil {
		h.logger.Error("create payslip failed", zap.String("employee", summary.Name), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create payslip record", err.Error())
		return
	}

	h.logger.Info("payslip generated", zap.Int("id", p.ID), zap.String("employee", summary.Name))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      p.ID,
		"payslip_data": gin.H{
			"employee_name":   summary.Name,
			"position":        summary.Position,
			"total_earnings":  summary.TotalEarnings,
			"tasks_completed": summary.TasksCompleted,
		},
	})
}

// Add inserts a payslip row directly, without consulting activerecords.
func (h *Handler) Add(c *gin.Context) {
	var req AddPayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EmployeeName == nil || req.Position == nil || req.Earnings == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_name, position, earnings")
		return
	}
	if *req.Earnings < 0 {
		response.Error(c, http.StatusBadRequest, "Earnings must be a positive number")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "payslip_history")
	if err != nil {
		h.logger.Error("generate payslip id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create payslip record", err.Error())
		return
	}

	// A bare date is completed with the current clock time.
	now := time.Now()
	dateGenerated := now.Format("2006-01-02 15:04:05")
	if req.DateGenerated != nil && *req.DateGenerated != "" {
		dateGenerated = *req.DateGenerated + " " + now.Format("15:04:05")
	}

	var employeeID *int
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		employeeID = req.EmployeeID
	}

	p := &Payslip{
		ID:            id,
		EmployeeID:    employeeID,
		EmployeeName:  *req.EmployeeName,
		Position:      *req.Position,
		Earnings:      *req.Earnings,
		DateGenerated: dateGenerated,
	}
	if err := h.repo.Create(ctx, p); err != nil {
		h.logger.Error("insert payslip failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create payslip record", err.Error())
		return
	}

	h.logger.Info("payslip inserted", zap.Int("id", id), zap.String("employee", p.EmployeeName))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"payslip_data": gin.H{
			"employee_name":  p.EmployeeName,
			"position":       p.Position,
			"earnings":       p.Earnings,
			"date_generated": dateGenerated,
			"employee_id":    employeeID,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.Update(c.Request.Context(), req); err != nil {
		h.logger.Error("update payslip failed", zap.Int("id", req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update payslip record", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// Delete removes either all payslips for an employee or a single row by id.
func (h *Handler) Delete(c *gin.Context) {
	var req DeletePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	switch {
	case req.EmployeeName != nil:
		if err := h.repo.DeleteByEmployee(ctx, *req.EmployeeName); err != nil {
			h.logger.Error("delete payslips by employee failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete payslips", err.Error())
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "All payslips deleted for employee"})
	case req.ID != nil:
		if err := h.repo.DeleteByID(ctx, *req.ID); err != nil {
			h.logger.Error("delete payslip failed", zap.Int("id", *req.ID), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete payslip", err.Error())
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Payslip deleted"})
	default:
		response.Error(c, http.StatusBadRequest, "Either employee_name or id must be provided")
	}
}
