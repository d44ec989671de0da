package benefit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/apperror"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validStatuses = map[string]bool{
	"active":    true,
	"inactive":  true,
	"expired":   true,
	"cancelled": true,
}

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("benefit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID:  c.Query("employee_id"),
		Status:      c.Query("status"),
		BenefitType: c.Query("benefit_type"),
	}
	benefits, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list benefits failed", zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to fetch benefits"))
		return
	}
	response.List(c, http.StatusOK, benefits)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperror.Invalid("Missing required field: employee_id"))
		return
	}

	if req.EmployeeID == nil || *req.EmployeeID == 0 {
		response.AppError(c, apperror.Invalid("Missing required field: employee_id"))
		return
	}
	if req.BenefitType == nil || *req.BenefitType == "" {
		response.AppError(c, apperror.Invalid("Missing required field: benefit_type"))
		return
	}
	if req.StartDate == nil || *req.StartDate == "" {
		response.AppError(c, apperror.Invalid("Missing required field: start_date"))
		return
	}

	employeeID := *req.EmployeeID
	if !randomid.InRange(employeeID) {
		response.AppError(c, apperror.Invalid("Employee ID must be a 5-digit number"))
		return
	}

	ctx := c.Request.Context()
	employeeName, err := h.repo.EmployeeName(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AppError(c, apperror.NotFound("Employee ID not found in active records"))
			return
		}
		h.logger.Error("employee lookup failed", zap.Int("employee_id", employeeID), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to create benefit record"))
		return
	}

	start, ok := datefmt.Parse(*req.StartDate)
	if !ok {
		response.AppError(c, apperror.Invalid("Invalid start date format"))
		return
	}
	if req.EndDate != nil && *req.EndDate == "" {
		req.EndDate = nil
	}
	if req.EndDate != nil {
		end, ok := datefmt.Parse(*req.EndDate)
		if !ok {
			response.AppError(c, apperror.Invalid("Invalid end date format"))
			return
		}
		if end.Before(start) {
			response.AppError(c, apperror.Invalid("End date cannot be before start date"))
			return
		}
	}

	status := "active"
	if req.Status != nil {
		status = *req.Status
	}
	if !validStatuses[status] {
		response.AppError(c, apperror.Invalid("Invalid status. Must be: active, inactive, expired, or cancelled"))
		return
	}

	amount := 0.00
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount < 0 {
		response.AppError(c, apperror.Invalid("Amount must be a positive number"))
		return
	}

	id, err := h.ids.Next(ctx, "benefits")
	if err != nil {
		h.logger.Error("generate benefit id failed", zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to create benefit record"))
		return
	}

	b := &Benefit{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		BenefitType:  *req.BenefitType,
		Description:  req.Description,
		Amount:       amount,
		StartDate:    *req.StartDate,
		EndDate:      req.EndDate,
		Status:       status,
		Notes:        req.Notes,
	}
	if err := h.repo.Create(ctx, b); err != nil {
		h.logger.Error("create benefit failed", zap.Int("id", id), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to create benefit record"))
		return
	}

	h.logger.Info("benefit created", zap.Int("id", id), zap.Int("employee_id", employeeID), zap.String("benefit_type", b.BenefitType))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Benefit record created successfully!",
		"id":      id,
		"benefit": gin.H{
			"id":            id,
			"employee_id":   employeeID,
			"employee_name": employeeName,
			"benefit_type":  b.BenefitType,
			"amount":        amount,
			"start_date":    b.StartDate,
			"end_date":      req.EndDate,
			"status":        status,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.AppError(c, apperror.Invalid("Benefit ID is required"))
		return
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			response.AppError(c, apperror.Invalid("Invalid status"))
			return
		}
		fields["status"] = *req.Status
	}
	if req.BenefitType != nil {
		fields["benefit_type"] = *req.BenefitType
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			response.AppError(c, apperror.Invalid("Amount must be a positive number"))
			return
		}
		fields["amount"] = *req.Amount
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}

	if len(fields) == 0 {
		response.AppError(c, apperror.Invalid("No valid fields to update"))
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update benefit failed", zap.Int("id", *req.ID), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to update benefit record"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Benefit record updated successfully!"})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.AppError(c, apperror.Invalid("Benefit ID is required"))
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete benefit failed", zap.Int("id", *req.ID), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to delete benefit record"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Benefit record deleted successfully!"})
}

// LegacyAdd serves ?action=add_benefit with form-encoded input. Errors use
// the message key, the enrollment skips date and status validation, and the
// envelope nests the echo under data.
func (h *Handler) LegacyAdd(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.Fail(c, http.StatusMethodNotAllowed, "Only POST method allowed")
		return
	}

	employeeIDRaw := c.PostForm("employee_id")
	benefitType := c.PostForm("benefit_type")
	startDate := c.PostForm("start_date")
	if employeeIDRaw == "" || benefitType == "" || startDate == "" {
		response.Fail(c, http.StatusBadRequest, "Missing required fields: employee_id, benefit_type, start_date")
		return
	}

	employeeID, _ := strconv.Atoi(employeeIDRaw)
	if !randomid.InRange(employeeID) {
		response.Fail(c, http.StatusBadRequest, "Employee ID must be a 5-digit number")
		return
	}

	ctx := c.Request.Context()
	employeeName, err := h.repo.EmployeeName(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, http.StatusNotFound, "Employee ID not found")
			return
		}
		h.logger.Error("employee lookup failed", zap.Int("employee_id", employeeID), zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create benefit record", err.Error())
		return
	}

	id, err := h.ids.Next(ctx, "benefits")
	if err != nil {
		h.logger.Error("generate benefit id failed", zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create benefit record", err.Error())
		return
	}

	var description *string
	if raw := c.PostForm("description"); raw != "" {
		description = &raw
	}
	amount := 0.00
	if raw := c.PostForm("amount"); raw != "" {
		amount, _ = strconv.ParseFloat(raw, 64)
	}
	var endDate *string
	if raw := c.PostForm("end_date"); raw != "" {
		endDate = &raw
	}
	status := "active"
	if raw, ok := c.GetPostForm("status"); ok {
		status = raw
	}

	b := &Benefit{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		BenefitType:  benefitType,
		Description:  description,
		Amount:       amount,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}
	if err := h.repo.Create(ctx, b); err != nil {
		h.logger.Error("create benefit failed", zap.Int("id", id), zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create benefit record", err.Error())
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Benefit record saved successfully!",
		"id":      id,
		"data": gin.H{
			"id":            id,
			"employee_id":   employeeID,
			"employee_name": employeeName,
			"benefit_type":  benefitType,
			"amount":        amount,
			"start_date":    startDate,
			"end_date":      endDate,
			"status":        status,
		},
	})
}
