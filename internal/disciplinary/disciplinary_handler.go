package disciplinary

import (
	"fmt"
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	validActionTypes = map[string]bool{
		"verbal_warning":  true,
		"written_warning": true,
		"suspension":      true,
		"termination":     true,
		"other":           true,
	}
	validSeverities = map[string]bool{
		"minor":    true,
		"moderate": true,
		"major":    true,
		"critical": true,
	}
	validStatuses = map[string]bool{
		"open":        true,
		"in_progress": true,
		"resolved":    true,
		"closed":      true,
	}
)

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("disciplinary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("disciplinary.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		ActionType: c.Query("action_type"),
		Severity:   c.Query("severity"),
	}
	actions, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list disciplinary actions failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch disciplinary actions", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, actions)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDisciplinaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required field: employee_name")
		return
	}

	// Required fields must be present and non-empty.
	required := []struct {
		name  string
		value *string
	}{
		{"employee_name", req.EmployeeName},
		{"action_type", req.ActionType},
		{"incident_date", req.IncidentDate},
		{"description", req.Description},
		{"action_taken", req.ActionTaken},
		{"reported_by", req.ReportedBy},
	}
	for _, f := range required {
		if f.value == nil || *f.value == "" {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", f.name))
			return
		}
	}

	if !validActionTypes[*req.ActionType] {
		response.Error(c, http.StatusBadRequest, "Invalid action_type. Must be: verbal_warning, written_warning, suspension, termination, or other")
		return
	}

	severity := "minor"
	if req.Severity != nil {
		severity = *req.Severity
	}
	if !validSeverities[severity] {
		response.Error(c, http.StatusBadRequest, "Invalid severity. Must be: minor, moderate, major, or critical")
		return
	}

	if !datefmt.Valid(*req.IncidentDate) {
		response.Error(c, http.StatusBadRequest, "Invalid incident date format")
		return
	}

	status := "open"
	if req.Status != nil {
		status = *req.Status
	}
	if !validStatuses[status] {
		response.Error(c, http.StatusBadRequest, "Invalid status. Must be: open, in_progress, resolved, or closed")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "disciplinary_actions")
	if err != nil {
		h.logger.Error("generate disciplinary id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create disciplinary action", err.Error())
		return
	}

	// A supplied employee_id is stored as-is (unverified); otherwise resolve
	// by name and leave null on a miss.
	var employeeID *int
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		employeeID = req.EmployeeID
	} else {
		employeeID, err = h.repo.EmployeeIDByName(ctx, *req.EmployeeName)
		if err != nil {
			h.logger.Error("employee lookup failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create disciplinary action", err.Error())
			return
		}
	}

	followUpRequired := false
	if req.FollowUpRequired != nil {
		followUpRequired = *req.FollowUpRequired
	}
	if req.FollowUpDate != nil && *req.FollowUpDate == "" {
		req.FollowUpDate = nil
	}

	a := &DisciplinaryAction{
		ID:               id,
		EmployeeID:       employeeID,
		EmployeeName:     *req.EmployeeName,
		ActionType:       *req.ActionType,
		Severity:         severity,
		ViolationType:    req.ViolationType,
		IncidentDate:     *req.IncidentDate,
		Description:      *req.Description,
		ActionTaken:      *req.ActionTaken,
		ReportedBy:       *req.ReportedBy,
		WitnessNames:     req.WitnessNames,
		FollowUpRequired: followUpRequired,
		FollowUpDate:     req.FollowUpDate,
		FollowUpNotes:    req.FollowUpNotes,
		Status:           status,
		ResolutionNotes:  req.ResolutionNotes,
		CreatedBy:        req.CreatedBy,
	}
	if err := h.repo.Create(ctx, a); err != nil {
		h.logger.Error("create disciplinary action failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create disciplinary action", err.Error())
		return
	}

	h.logger.Info("disciplinary action created", zap.Int("id", id), zap.String("employee", a.EmployeeName), zap.String("action_type", a.ActionType))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"disciplinary_action": gin.H{
			"id":            id,
			"employee_id":   employeeID,
			"employee_name": a.EmployeeName,
			"action_type":   a.ActionType,
			"severity":      severity,
			"incident_date": a.IncidentDate,
			"status":        status,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateDisciplinaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Disciplinary action ID is required")
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
	if req.Severity != nil {
		if !validSeverities[*req.Severity] {
			response.Error(c, http.StatusBadRequest, "Invalid severity")
			return
		}
		fields["severity"] = *req.Severity
	}
	if req.ActionType != nil {
		if !validActionTypes[*req.ActionType] {
			response.Error(c, http.StatusBadRequest, "Invalid action_type")
			return
		}
		fields["action_type"] = *req.ActionType
	}

	texts := []struct {
		name  string
		value *string
	}{
		{"description", req.Description},
		{"action_taken", req.ActionTaken},
		{"violation_type", req.ViolationType},
		{"witness_names", req.WitnessNames},
		{"follow_up_notes", req.FollowUpNotes},
		{"resolution_notes", req.ResolutionNotes},
		{"reported_by", req.ReportedBy},
		{"created_by", req.CreatedBy},
		{"incident_date", req.IncidentDate},
		{"follow_up_date", req.FollowUpDate},
	}
	for _, t := range texts {
		if t.value != nil {
			fields[t.name] = *t.value
		}
	}
	if req.FollowUpRequired != nil {
		fields["follow_up_required"] = *req.FollowUpRequired
	}

	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update disciplinary action failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update disciplinary action", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteDisciplinaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Disciplinary action ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete disciplinary action failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete disciplinary action", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
