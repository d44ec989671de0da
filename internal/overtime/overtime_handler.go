package overtime

import (
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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
	l := zap.L().Named("overtime.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		Date:       c.Query("date"),
	}
	requests, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list overtime requests failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch overtime requests", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EmployeeID == nil || req.OTDate == nil || req.Hours == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_id, ot_date, hours")
		return
	}

	if *req.EmployeeID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}
	if *req.Hours <= 0 || *req.Hours > 24 {
		response.Error(c, http.StatusBadRequest, "Hours must be between 0 and 24")
		return
	}
	if !datefmt.Valid(*req.OTDate) {
		response.Error(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "overtime_requests")
	if err != nil {
		h.logger.Error("generate overtime request id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create overtime request", err.Error())
		return
	}

	employeeName, err := h.repo.EmployeeNameByID(ctx, *req.EmployeeID)
	if err != nil {
		h.logger.Error("employee lookup failed", zap.Int("employee_id", *req.EmployeeID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create overtime request", err.Error())
		return
	}

	status := "pending"
	if req.Status != nil {
		status = *req.Status
	}

	o := &OvertimeRequest{
		ID:           id,
		EmployeeID:   *req.EmployeeID,
		EmployeeName: employeeName,
		OTDate:       *req.OTDate,
		Hours:        *req.Hours,
		Reason:       req.Reason,
		Status:       status,
	}
	if err := h.repo.Create(ctx, o); err != nil {
		h.logger.Error("create overtime request failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create overtime request", err.Error())
		return
	}

	h.logger.Info("overtime request created", zap.Int("id", id), zap.Int("employee_id", o.EmployeeID), zap.Float64("hours", o.Hours))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"overtime_request": gin.H{
			"id":            id,
			"employee_id":   o.EmployeeID,
			"employee_name": o.EmployeeName,
			"ot_date":       o.OTDate,
			"hours":         o.Hours,
			"reason":        o.Reason,
			"status":        o.Status,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Overtime request ID is required")
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
	if req.Hours != nil {
		if *req.Hours <= 0 || *req.Hours > 24 {
			response.Error(c, http.StatusBadRequest, "Hours must be between 0 and 24")
			return
		}
		fields["hours"] = *req.Hours
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update overtime request failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update overtime request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Overtime request ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete overtime request failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete overtime request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
