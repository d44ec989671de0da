package leave

import (
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validLeaveTypes = map[string]bool{
	"sick_leave":      true,
	"vacation_leave":  true,
	"personal_leave":  true,
	"emergency_leave": true,
	"maternity_leave": true,
	"paternity_leave": true,
}

var validStatuses = map[string]bool{
	"pending":  true,
	"approved": true,
	"rejected": true,
}

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeName: c.Query("employee"),
		Status:       c.Query("status"),
	}
	requests, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list leave requests failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch leave requests", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EmployeeName == nil || req.LeaveType == nil || req.StartDate == nil || req.EndDate == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_name, leave_type, start_date, end_date")
		return
	}

	if !validLeaveTypes[*req.LeaveType] {
		response.Error(c, http.StatusBadRequest, "Invalid leave type")
		return
	}

	start, okStart := datefmt.Parse(*req.StartDate)
	end, okEnd := datefmt.Parse(*req.EndDate)
	if !okStart || !okEnd {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}
	if start.Before(datefmt.Today()) {
		response.Error(c, http.StatusBadRequest, "Start date cannot be in the past")
		return
	}
	if end.Before(start) {
		response.Error(c, http.StatusBadRequest, "End date cannot be before start date")
		return
	}
	if end.Sub(start).Hours() > 365*24 {
		response.Error(c, http.StatusBadRequest, "Leave duration cannot exceed 1 year")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "leave_requests")
	if err != nil {
		h.logger.Error("generate leave request id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create leave request", err.Error())
		return
	}

	// Best-effort link to the employee record; absent names store a null id.
	employeeID, err := h.repo.EmployeeIDByName(ctx, *req.EmployeeName)
	if err != nil {
		h.logger.Error("employee lookup failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create leave request", err.Error())
		return
	}

	status := "pending"
	if req.Status != nil {
		status = *req.Status
	}

	l := &LeaveRequest{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: *req.EmployeeName,
		LeaveType:    *req.LeaveType,
		StartDate:    *req.StartDate,
		EndDate:      *req.EndDate,
		Reason:       req.Reason,
		Status:       status,
	}
	if err := h.repo.Create(ctx, l); err != nil {
		h.logger.Error("create leave request failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create leave request", err.Error())
		return
	}

	h.logger.Info("leave request created", zap.Int("id", id), zap.String("employee", l.EmployeeName), zap.String("type", l.LeaveType))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"leave_request": gin.H{
			"id":            id,
			"employee_name": l.EmployeeName,
			"leave_type":    l.LeaveType,
			"start_date":    l.StartDate,
			"end_date":      l.EndDate,
			"reason":        l.Reason,
			"status":        l.Status,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Leave request ID is required")
		return
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			response.Error(c, http.StatusBadRequest, "Invalid status")
			return
		}
		fields["status"] = *req.Status
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update leave request failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update leave request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Leave request ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete leave request failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete leave request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
