package budget

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/apperror"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var fiscalYearPattern = regexp.MustCompile(`^\d{4}$`)

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("budget.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("budget.handler")
	}
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		FiscalYear: c.Query("fiscal_year"),
		Department: c.Query("department"),
	}
	budgets, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list budgets failed", zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to fetch budget records"))
		return
	}
	response.JSON(c, http.StatusOK, budgets)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Department == nil || req.AllocatedAmount == nil || req.FiscalYear == nil {
		response.AppError(c, apperror.Invalid("Missing required fields: department, allocated_amount, fiscal_year"))
		return
	}

	if *req.AllocatedAmount < 0 {
		response.AppError(c, apperror.Invalid("Allocated amount must be a positive number"))
		return
	}
	spent := 0.00
	if req.SpentAmount != nil {
		spent = *req.SpentAmount
	}
	if spent < 0 {
		response.AppError(c, apperror.Invalid("Spent amount must be a positive number"))
		return
	}
	if spent > *req.AllocatedAmount {
		response.AppError(c, apperror.Invalid("Spent amount cannot exceed allocated amount"))
		return
	}
	if !fiscalYearPattern.MatchString(*req.FiscalYear) {
		response.AppError(c, apperror.Invalid("Fiscal year must be a 4-digit year (e.g., 2025)"))
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.Exists(ctx, *req.Department, *req.FiscalYear)
	if err != nil {
		h.logger.Error("budget duplicate check failed", zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to create budget record"))
		return
	}
	if exists {
		response.AppError(c, apperror.Conflict("Budget record already exists for this department and fiscal year"))
		return
	}

	b := &Budget{
		Department:      *req.Department,
		AllocatedAmount: *req.AllocatedAmount,
		SpentAmount:     spent,
		FiscalYear:      *req.FiscalYear,
		Notes:           req.Notes,
	}
	if err := h.repo.Create(ctx, b); err != nil {
		h.logger.Error("create budget failed", zap.String("department", b.Department), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to create budget record"))
		return
	}

	percentageSpent := 0.0
	if b.AllocatedAmount > 0 {
		percentageSpent = b.SpentAmount / b.AllocatedAmount * 100
	}

	h.logger.Info("budget created", zap.Int("id", b.ID), zap.String("department", b.Department), zap.String("fiscal_year", b.FiscalYear))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      b.ID,
		"budget": gin.H{
			"id":               b.ID,
			"department":       b.Department,
			"allocated_amount": b.AllocatedAmount,
			"spent_amount":     b.SpentAmount,
			"fiscal_year":      b.FiscalYear,
			"remaining_amount": b.AllocatedAmount - b.SpentAmount,
			"percentage_spent": percentageSpent,
			"notes":            b.Notes,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.AppError(c, apperror.Invalid("Budget record ID is required"))
		return
	}

	fields := map[string]any{}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.AllocatedAmount != nil {
		if *req.AllocatedAmount < 0 {
			response.AppError(c, apperror.Invalid("Allocated amount must be a positive number"))
			return
		}
		fields["allocated_amount"] = *req.AllocatedAmount
	}
	if req.SpentAmount != nil {
		if *req.SpentAmount < 0 {
			response.AppError(c, apperror.Invalid("Spent amount must be a positive number"))
			return
		}
		fields["spent_amount"] = *req.SpentAmount
	}
	if req.FiscalYear != nil {
		if !fiscalYearPattern.MatchString(*req.FiscalYear) {
			response.AppError(c, apperror.Invalid("Fiscal year must be a 4-digit year (e.g., 2025)"))
			return
		}
		fields["fiscal_year"] = *req.FiscalYear
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		response.AppError(c, apperror.Invalid("No valid fields to update"))
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update budget failed", zap.Int("id", *req.ID), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to update budget record"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.AppError(c, apperror.Invalid("Budget record ID is required"))
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete budget failed", zap.Int("id", *req.ID), zap.Error(err))
		response.AppError(c, apperror.Internal(err, "Failed to delete budget record"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// LegacyList serves ?action=get_budget: same rows as GetAll but wrapped in
// the {success, data} envelope the older dashboard pages expect.
func (h *Handler) LegacyList(c *gin.Context) {
	budgets, err := h.repo.FindAll(c.Request.Context(), ListFilter{})
	if err != nil {
		h.logger.Error("legacy list budgets failed", zap.Error(err))
		response.FailErrorDetails(c, http.StatusInternalServerError, "Failed to fetch budget records", err.Error())
		return
	}
	response.List(c, http.StatusOK, budgets)
}

// LegacyAdd serves ?action=add_budget with form-encoded input.
func (h *Handler) LegacyAdd(c *gin.Context) {
	department := c.PostForm("department")
	allocatedRaw := c.PostForm("allocated_amount")
	fiscalYear := c.PostForm("fiscal_year")
	if department == "" || allocatedRaw == "" || fiscalYear == "" {
		response.FailError(c, http.StatusBadRequest, "Missing required fields: department, allocated_amount, fiscal_year")
		return
	}

	allocated, _ := strconv.ParseFloat(allocatedRaw, 64)
	spent := 0.00
	if raw := c.PostForm("spent_amount"); raw != "" {
		spent, _ = strconv.ParseFloat(raw, 64)
	}
	if allocated < 0 || spent < 0 {
		response.FailError(c, http.StatusBadRequest, "Amounts must be positive numbers")
		return
	}
	if spent > allocated {
		response.FailError(c, http.StatusBadRequest, "Spent amount cannot exceed allocated amount")
		return
	}
	if !fiscalYearPattern.MatchString(fiscalYear) {
		response.FailError(c, http.StatusBadRequest, "Fiscal year must be a 4-digit year")
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.Exists(ctx, department, fiscalYear)
	if err != nil {
		h.logger.Error("budget duplicate check failed", zap.Error(err))
		response.FailErrorDetails(c, http.StatusInternalServerError, "Failed to create budget record", err.Error())
		return
	}
	if exists {
		response.FailError(c, http.StatusConflict, "Budget record already exists for this department and fiscal year")
		return
	}

	var notes *string
	if raw, ok := c.GetPostForm("notes"); ok {
		notes = &raw
	}

	b := &Budget{
		Department:      department,
		AllocatedAmount: allocated,
		SpentAmount:     spent,
		FiscalYear:      fiscalYear,
		Notes:           notes,
	}
	if err := h.repo.Create(ctx, b); err != nil {
		h.logger.Error("create budget failed", zap.String("department", department), zap.Error(err))
		response.FailErrorDetails(c, http.StatusInternalServerError, "Failed to create budget record", err.Error())
		return
	}

	h.logger.Info("budget created via legacy action", zap.Int("id", b.ID), zap.String("department", department))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Budget record saved successfully!",
		"id":      b.ID,
	})
}

// LegacyDelete serves ?action=delete_budget with form-encoded input.
func (h *Handler) LegacyDelete(c *gin.Context) {
	raw, ok := c.GetPostForm("id")
	if !ok {
		response.FailError(c, http.StatusBadRequest, "Budget record ID is required")
		return
	}
	id, _ := strconv.Atoi(raw)

	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		h.logger.Error("delete budget failed", zap.Int("id", id), zap.Error(err))
		response.FailErrorDetails(c, http.StatusInternalServerError, "Failed to delete budget record", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Budget record deleted successfully"})
}
