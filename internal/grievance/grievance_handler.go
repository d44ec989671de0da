package grievance

import (
	"fmt"
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/datefmt"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	validTypes = map[string]bool{
		"harassment":       true,
		"discrimination":   true,
		"workplace_safety": true,
		"compensation":     true,
		"workload":         true,
		"management_issue": true,
		"other":            true,
	}
	validPriorities = map[string]bool{
		"low":    true,
		"medium": true,
		"high":   true,
		"urgent": true,
	}
	validStatuses = map[string]bool{
		"submitted":     true,
		"under_review":  true,
		"investigation": true,
		"mediation":     true,
		"resolved":      true,
		"closed":        true,
		"rejected":      true,
	}
)

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("grievance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("grievance.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeID:    c.Query("employee_id"),
		Status:        c.Query("status"),
		GrievanceType: c.Query("grievance_type"),
		Priority:      c.Query("priority"),
		AssignedTo:    c.Query("assigned_to"),
	}
	grievances, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list grievances failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch grievances", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, grievances)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required field: employee_name")
		return
	}

	required := []struct {
		name  string
		value *string
	}{
		{"employee_name", req.EmployeeName},
		{"grievance_type", req.GrievanceType},
		{"subject", req.Subject},
		{"description", req.Description},
		{"date_filed", req.DateFiled},
	}
	for _, f := range required {
		if f.value == nil || *f.value == "" {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", f.name))
			return
		}
	}

	if !validTypes[*req.GrievanceType] {
		response.Error(c, http.StatusBadRequest, "Invalid grievance_type. Must be: harassment, discrimination, workplace_safety, compensation, workload, management_issue, or other")
		return
	}

	priority := "medium"
	if req.Priority != nil {
		priority = *req.Priority
	}
	if !validPriorities[priority] {
		response.Error(c, http.StatusBadRequest, "Invalid priority. Must be: low, medium, high, or urgent")
		return
	}

	if !datefmt.Valid(*req.DateFiled) {
		response.Error(c, http.StatusBadRequest, "Invalid date_filed format")
		return
	}

	status := "submitted"
	if req.Status != nil {
		status = *req.Status
	}
	if !validStatuses[status] {
		response.Error(c, http.StatusBadRequest, "Invalid status. Must be: submitted, under_review, investigation, mediation, resolved, closed, or rejected")
		return
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "grievances")
	if err != nil {
		h.logger.Error("generate grievance id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create grievance", err.Error())
		return
	}

	isAnonymous := req.IsAnonymous != nil && *req.IsAnonymous
	confidential := true
	if req.Confidential != nil {
		confidential = *req.Confidential
	}

	// An anonymous filing is never linked by name; a supplied employee_id is
	// honored either way.
	var employeeID *int
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		employeeID = req.EmployeeID
	} else if !isAnonymous {
		employeeID, err = h.repo.EmployeeIDByName(ctx, *req.EmployeeName)
		if err != nil {
			h.logger.Error("employee lookup failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create grievance", err.Error())
			return
		}
	}

	if req.ResolutionDate != nil && *req.ResolutionDate == "" {
		req.ResolutionDate = nil
	}

	g := &Grievance{
		ID:                  id,
		EmployeeID:          employeeID,
		EmployeeName:        *req.EmployeeName,
		GrievanceType:       *req.GrievanceType,
		Priority:            priority,
		Subject:             *req.Subject,
		Description:         *req.Description,
		DateFiled:           *req.DateFiled,
		DesiredOutcome:      req.DesiredOutcome,
		AgainstPerson:       req.AgainstPerson,
		AgainstDepartment:   req.AgainstDepartment,
		Witnesses:           req.Witnesses,
		SupportingDocuments: req.SupportingDocuments,
		Status:              status,
		AssignedTo:          req.AssignedTo,
		InvestigationNotes:  req.InvestigationNotes,
		ResolutionDetails:   req.ResolutionDetails,
		ResolutionDate:      req.ResolutionDate,
		IsAnonymous:         isAnonymous,
		Confidential:        confidential,
	}
	if err := h.repo.Create(ctx, g); err != nil {
		h.logger.Error("create grievance failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create grievance", err.Error())
		return
	}

	h.logger.Info("grievance filed", zap.Int("id", id), zap.String("grievance_type", g.GrievanceType), zap.Bool("anonymous", isAnonymous))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"grievance": gin.H{
			"id":             id,
			"employee_id":    employeeID,
			"employee_name":  g.EmployeeName,
			"grievance_type": g.GrievanceType,
			"priority":       priority,
			"subject":        g.Subject,
			"date_filed":     g.DateFiled,
			"status":         status,
			"is_anonymous":   isAnonymous,
			"confidential":   confidential,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Grievance ID is required")
		return
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			response.Error(c, http.StatusBadRequest, "Invalid status")
			return
		}
		fields["status"] = *req.Status
		// Resolution gets stamped unless the caller sets the date explicitly.
		if (*req.Status == "resolved" || *req.Status == "closed") && req.ResolutionDate == nil {
			fields["resolution_date"] = gorm.Expr("CURDATE()")
		}
	}
	if req.Priority != nil {
		if !validPriorities[*req.Priority] {
			response.Error(c, http.StatusBadRequest, "Invalid priority")
			return
		}
		fields["priority"] = *req.Priority
	}
	if req.GrievanceType != nil {
		if !validTypes[*req.GrievanceType] {
			response.Error(c, http.StatusBadRequest, "Invalid grievance_type")
			return
		}
		fields["grievance_type"] = *req.GrievanceType
	}

	texts := []struct {
		name  string
		value *string
	}{
		{"subject", req.Subject},
		{"description", req.Description},
		{"desired_outcome", req.DesiredOutcome},
		{"against_person", req.AgainstPerson},
		{"against_department", req.AgainstDepartment},
		{"witnesses", req.Witnesses},
		{"supporting_documents", req.SupportingDocuments},
		{"assigned_to", req.AssignedTo},
		{"investigation_notes", req.InvestigationNotes},
		{"resolution_details", req.ResolutionDetails},
		{"date_filed", req.DateFiled},
	}
	for _, t := range texts {
		if t.value != nil {
			fields[t.name] = *t.value
		}
	}
	if req.ResolutionDate != nil {
		fields["resolution_date"] = *req.ResolutionDate
	}
	if req.IsAnonymous != nil {
		fields["is_anonymous"] = *req.IsAnonymous
	}
	if req.Confidential != nil {
		fields["confidential"] = *req.Confidential
	}

	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update grievance failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update grievance", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Grievance ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete grievance failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete grievance", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
