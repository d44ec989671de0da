package evaluation

import (
	"fmt"
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validStatuses = map[string]bool{
	"draft":        true,
	"completed":    true,
	"acknowledged": true,
}

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("evaluation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		EmployeeName: c.Query("employee"),
		Period:       c.Query("period"),
		Status:       c.Query("status"),
	}
	evaluations, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list evaluations failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch evaluations", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, evaluations)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required field: employee_name")
		return
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"employee_name", req.EmployeeName != nil},
		{"evaluator_name", req.EvaluatorName != nil},
		{"evaluation_period", req.EvaluationPeriod != nil},
		{"technical_skills", req.TechnicalSkills != nil},
		{"communication", req.Communication != nil},
		{"teamwork", req.Teamwork != nil},
		{"reliability", req.Reliability != nil},
		{"problem_solving", req.ProblemSolving != nil},
	}
	for _, f := range required {
		if !f.ok {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", f.name))
			return
		}
	}

	ratings := []struct {
		name  string
		value int
	}{
		{"technical_skills", *req.TechnicalSkills},
		{"communication", *req.Communication},
		{"teamwork", *req.Teamwork},
		{"reliability", *req.Reliability},
		{"problem_solving", *req.ProblemSolving},
	}
	for _, r := range ratings {
		if r.value < 1 || r.value > 5 {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("%s must be between 1 and 5", r.name))
			return
		}
	}

	// An absent overall score is stored as 0; a present one must be in range.
	overallScore := 0.0
	if req.OverallScore != nil {
		if *req.OverallScore < 1.00 || *req.OverallScore > 5.00 {
			response.Error(c, http.StatusBadRequest, "Overall score must be between 1.00 and 5.00")
			return
		}
		overallScore = *req.OverallScore
	}

	ctx := c.Request.Context()
	id, err := h.ids.Next(ctx, "employee_evaluations")
	if err != nil {
		h.logger.Error("generate evaluation id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create evaluation", err.Error())
		return
	}

	// Prefer a verified employee_id from the request; fall back to looking
	// the name up, and leave it null when neither resolves.
	var employeeID *int
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		exists, err := h.repo.EmployeeIDExists(ctx, *req.EmployeeID)
		if err != nil {
			h.logger.Error("employee id check failed", zap.Int("employee_id", *req.EmployeeID), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create evaluation", err.Error())
			return
		}
		if exists {
			employeeID = req.EmployeeID
		}
	}
	if employeeID == nil {
		employeeID, err = h.repo.EmployeeIDByName(ctx, *req.EmployeeName)
		if err != nil {
			h.logger.Error("employee lookup failed", zap.String("employee", *req.EmployeeName), zap.Error(err))
			response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create evaluation", err.Error())
			return
		}
	}

	e := &Evaluation{
		ID:                  id,
		EmployeeID:          employeeID,
		EmployeeName:        *req.EmployeeName,
		EvaluatorName:       *req.EvaluatorName,
		EvaluationPeriod:    *req.EvaluationPeriod,
		TechnicalSkills:     *req.TechnicalSkills,
		Communication:       *req.Communication,
		Teamwork:            *req.Teamwork,
		Reliability:         *req.Reliability,
		ProblemSolving:      *req.ProblemSolving,
		OverallScore:        overallScore,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		GoalsNextPeriod:     req.GoalsNextPeriod,
		AdditionalComments:  req.AdditionalComments,
	}
	if err := h.repo.Create(ctx, e); err != nil {
		h.logger.Error("create evaluation failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to create evaluation", err.Error())
		return
	}

	h.logger.Info("evaluation created", zap.Int("id", id), zap.String("employee", e.EmployeeName), zap.String("period", e.EvaluationPeriod))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"evaluation": gin.H{
			"id":                id,
			"employee_name":     e.EmployeeName,
			"evaluator_name":    e.EvaluatorName,
			"evaluation_period": e.EvaluationPeriod,
			"overall_score":     overallScore,
		},
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Evaluation ID is required")
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

	texts := []struct {
		name  string
		value *string
	}{
		{"strengths", req.Strengths},
		{"areas_for_improvement", req.AreasForImprovement},
		{"goals_next_period", req.GoalsNextPeriod},
		{"additional_comments", req.AdditionalComments},
	}
	for _, t := range texts {
		if t.value != nil {
			fields[t.name] = *t.value
		}
	}

	ratings := []struct {
		name  string
		value *int
	}{
		{"technical_skills", req.TechnicalSkills},
		{"communication", req.Communication},
		{"teamwork", req.Teamwork},
		{"reliability", req.Reliability},
		{"problem_solving", req.ProblemSolving},
	}
	for _, r := range ratings {
		if r.value == nil {
			continue
		}
		if *r.value < 1 || *r.value > 5 {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("%s must be between 1 and 5", r.name))
			return
		}
		fields[r.name] = *r.value
	}

	if req.OverallScore != nil {
		if *req.OverallScore < 1.00 || *req.OverallScore > 5.00 {
			response.Error(c, http.StatusBadRequest, "Overall score must be between 1.00 and 5.00")
			return
		}
		fields["overall_score"] = *req.OverallScore
	}

	if len(fields) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid fields to update")
		return
	}

	if err := h.repo.UpdateFields(c.Request.Context(), *req.ID, fields); err != nil {
		h.logger.Error("update evaluation failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to update evaluation", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// Delete accepts the id either as the trailing path segment
// (DELETE /evaluations/12345, stashed by the dispatcher) or in the body.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := c.Get("path_id")
	var evalID int
	if ok {
		evalID = id.(int)
	} else {
		var req DeleteEvaluationRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
			response.Error(c, http.StatusBadRequest, "Evaluation ID is required")
			return
		}
		evalID = *req.ID
	}

	if err := h.repo.DeleteByID(c.Request.Context(), evalID); err != nil {
		h.logger.Error("delete evaluation failed", zap.Int("id", evalID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete evaluation", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
