package salaryrequest

import (
	"errors"
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var allowedStatuses = map[string]bool{
	"Pending":  true,
	"Approved": true,
	"Declined": true,
}

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salaryrequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryrequest.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	requests, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list salary requests failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch salary requests", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmployeeName == nil || req.RequestedSalary == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_name, requested_salary")
		return
	}

	ctx := c.Request.Context()

	// An employee_id is optional, but once supplied it has to resolve to an
	// active record whose name matches the request.
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		if !randomid.InRange(*req.EmployeeID) {
			response.Error(c, http.StatusBadRequest, "Employee ID must be a 5-digit number")
			return
		}
		name, err := h.repo.EmployeeName(ctx, *req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Employee ID not found in active records")
				return
			}
			h.logger.Error("employee lookup failed", zap.Int("employee_id", *req.EmployeeID), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create salary request", err.Error())
			return
		}
		if name != *req.EmployeeName {
			response.Error(c, http.StatusBadRequest, "Employee name does not match the provided Employee ID")
			return
		}
	} else {
		req.EmployeeID = nil
	}

	if *req.RequestedSalary <= 0 {
		response.Error(c, http.StatusBadRequest, "Requested salary must be greater than 0")
		return
	}

	id, err := h.ids.Next(ctx, "employeesalaryrequests")
	if err != nil {
		h.logger.Error("generate salary request id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create salary request", err.Error())
		return
	}

	s := &SalaryRequest{
		ID:              id,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    *req.EmployeeName,
		RequestedSalary: *req.RequestedSalary,
		Status:          req.Status,
		Actions:         req.Actions,
	}
	if err := h.repo.Create(ctx, s); err != nil {
		h.logger.Error("create salary request failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create salary request", err.Error())
		return
	}

	h.logger.Info("salary request created", zap.Int("id", id), zap.String("employee", s.EmployeeName))
	response.JSON(c, http.StatusOK, gin.H{"success": true, "id": id})
}

// Update sets the status only. An unrecognized status value falls back to
// Pending rather than erroring, matching the dashboard's existing behavior.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := "Pending"
	if req.Status != nil && allowedStatuses[*req.Status] {
		status = *req.Status
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), req.ID, status); err != nil {
		h.logger.Error("update salary request failed", zap.Int("id", req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update salary request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), req.ID); err != nil {
		h.logger.Error("delete salary request failed", zap.Int("id", req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete salary request", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
