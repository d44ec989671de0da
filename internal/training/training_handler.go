package training

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validStatuses = map[string]bool{
	"enrolled":  true,
	"ongoing":   true,
	"completed": true,
	"cancelled": true,
}

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("training.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID:  c.Query("employee_id"),
		Status:      c.Query("status"),
		ProgramType: c.Query("program_type"),
	}
	trainings, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list training programs failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch training programs", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, trainings)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EmployeeID == nil || req.ProgramName == nil || req.StartDate == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_id, program_name, start_date")
		return
	}

	if !randomid.InRange(*req.EmployeeID) {
		response.Error(c, http.StatusBadRequest, "Employee ID must be a 5-digit number")
		return
	}

	ctx := c.Request.Context()
	employeeName, err := h.repo.EmployeeName(ctx, *req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Employee ID not found in active records")
			return
		}
		h.logger.Error("employee lookup failed", zap.Int("employee_id", *req.EmployeeID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create training program enrollment", err.Error())
		return
	}

	if !datefmt.Valid(*req.StartDate) {
		response.Error(c, http.StatusBadRequest, "Invalid start date format")
		return
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, ok := datefmt.Parse(*req.EndDate)
		if !ok {
			response.Error(c, http.StatusBadRequest, "Invalid end date format")
			return
		}
		start, _ := datefmt.Parse(*req.StartDate)
		if end.Before(start) {
			response.Error(c, http.StatusBadRequest, "End date cannot be before start date")
			return
		}
	} else {
		req.EndDate = nil
	}

	status := "enrolled"
	if req.Status != nil {
		status = *req.Status
	}
	if !validStatuses[status] {
		response.Error(c, http.StatusBadRequest, "Invalid status. Must be: enrolled, ongoing, completed, or cancelled")
		return
	}

	completion := 0
	if req.CompletionPercentage != nil {
		completion = *req.CompletionPercentage
	}
	if completion < 0 || completion > 100 {
		response.Error(c, http.StatusBadRequest, "Completion percentage must be between 0 and 100")
		return
	}

	id, err := h.ids.Next(ctx, "training_programs")
	if err != nil {
		h.logger.Error("generate training id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create training program enrollment", err.Error())
		return
	}

	cost := 0.00
	if req.Cost != nil {
		cost = *req.Cost
	}
	certObtained := false
	if req.CertificationObtained != nil {
		certObtained = *req.CertificationObtained
	}

	t := &TrainingProgram{
		ID:                    id,
		EmployeeID:            *req.EmployeeID,
		EmployeeName:          employeeName,
		ProgramName:           *req.ProgramName,
		ProgramType:           req.ProgramType,
		StartDate:             *req.StartDate,
		EndDate:               req.EndDate,
		DurationHours:         req.DurationHours,
		Status:                status,
		CompletionPercentage:  completion,
		TrainerName:           req.TrainerName,
		Location:              req.Location,
		Cost:                  cost,
		CertificationObtained: certObtained,
		CertificationName:     req.CertificationName,
		Notes:                 req.Notes,
	}
	if err := h.repo.Create(ctx, t); err != nil {
		h.logger.Error("create training program failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create training program enrollment", err.Error())
		return
	}

	h.logger.Info("training enrollment created", zap.Int("id", id), zap.String("employee", employeeName), zap.String("program", t.ProgramName))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"training_program": gin.H{
			"id":            id,
			"employee_id":   t.EmployeeID,
			"employee_name": employeeName,
			"program_name":  t.ProgramName,
			"start_date":    t.StartDate,
			"end_date":      t.EndDate,
			"status":        status,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Training program ID is required")
		return
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			response.Error(c, http.StatusBadRequest, "Invalid status")
			return
		}
		fields["status"] = *req.Status
		if *req.Status == "completed" {
			fields["date_completed"] = gorm.Expr("CURRENT_TIMESTAMP")
		}
	}
	if req.CompletionPercentage != nil {
		if *req.CompletionPercentage < 0 || *req.CompletionPercentage > 100 {
			response.Error(c, http.StatusBadRequest, "Completion percentage must be between 0 and 100")
			return
		}
		fields["completion_percentage"] = *req.CompletionPercentage
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.DurationHours != nil {
		fields["duration_hours"] = *req.DurationHours
	}
	if req.TrainerName != nil {
		fields["trainer_name"] = *req.TrainerName
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.CertificationObtained != nil {
		fields["certification_obtained"] = *req.CertificationObtained
	}
	if req.CertificationName != nil {
		fields["certification_name"] = *req.CertificationName
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.ProgramType != nil {
		fields["program_type"] = *req.ProgramType
	}
	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update training program failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update training program", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Training program ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete training program failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete training program", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// LegacyList serves ?action=get_training with the {success, data} envelope.
func (h *Handler) LegacyList(c *gin.Context) {
	trainings, err := h.repo.FindAll(c.Request.Context(), ListFilter{})
	if err != nil {
		h.logger.Error("legacy list training failed", zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to fetch training programs", err.Error())
		return
	}
	response.List(c, http.StatusOK, trainings)
}

// LegacyAdd serves ?action=add_training with form-encoded input. Errors use
// the message key, unlike the JSON endpoint's error key.
func (h *Handler) LegacyAdd(c *gin.Context) {
	employeeIDRaw := c.PostForm("employee_id")
	programName := c.PostForm("program_name")
	startDate := c.PostForm("start_date")
	if employeeIDRaw == "" || programName == "" || startDate == "" {
		response.Fail(c, http.StatusBadRequest, "Missing required fields: employee_id, program_name, start_date")
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
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create training record", err.Error())
		return
	}

	id, err := h.ids.Next(ctx, "training_programs")
	if err != nil {
		h.logger.Error("generate training id failed", zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create training record", err.Error())
		return
	}

	var endDate *string
	if raw := c.PostForm("end_date"); raw != "" {
		endDate = &raw
	}
	status := "enrolled"
	if raw, ok := c.GetPostForm("status"); ok {
		status = raw
	}

	t := &TrainingProgram{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ProgramName:  programName,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}
	if err := h.repo.Create(ctx, t); err != nil {
		h.logger.Error("create training record failed", zap.Int("id", id), zap.Error(err))
		response.FailDetails(c, http.StatusInternalServerError, "Failed to create training record", err.Error())
		return
	}

	h.logger.Info("training record created via legacy action", zap.Int("id", id), zap.String("employee", employeeName))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Training record saved successfully!",
		"id":      id,
	})
}
