package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reports.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reports.handler")
	}
	return &Handler{repo: repo, logger: l, now: time.Now}
}

// money formats monetary values and scores the way the dashboard charts
// expect: two decimals, as a string.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Generate assembles the full analytics payload. Counts stay numeric;
// monetary totals and scores go out as two-decimal strings.
func (h *Handler) Generate(c *gin.Context) {
	s, err := h.repo.Collect(c.Request.Context())
	if err != nil {
		h.logger.Error("collect analytics failed", zap.Error(err))
		response.JSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to generate reports analytics",
			"details": err.Error(),
		})
		return
	}

	departments := make([]gin.H, 0, len(s.DepartmentBudgets))
	for _, d := range s.DepartmentBudgets {
		departments = append(departments, gin.H{
			"department":       d.Department,
			"allocated":        money(d.Allocated),
			"spent":            money(d.Spent),
			"remaining":        money(d.Remaining),
			"percentage_spent": money(d.PercentageSpent),
		})
	}

	trend := make([]gin.H, 0, len(s.PayrollTrend))
	for _, m := range s.PayrollTrend {
		trend = append(trend, gin.H{
			"month":          m.Month,
			"payslips_count": m.PayslipsCount,
			"total_earnings": money(m.TotalEarnings),
		})
	}

	performers := make([]gin.H, 0, len(s.TopPerformers))
	for _, p := range s.TopPerformers {
		performers = append(performers, gin.H{
			"employee_name":     p.EmployeeName,
			"overall_score":     money(p.OverallScore),
			"evaluation_period": p.EvaluationPeriod,
		})
	}

	// Zero-row scans leave nil maps and slices, which would encode as null;
	// the dashboard expects {} and [].
	if s.DisciplinaryBySeverity == nil {
		s.DisciplinaryBySeverity = map[string]int{}
	}
	if s.GrievancesByPriority == nil {
		s.GrievancesByPriority = map[string]int{}
	}
	if s.LeaveByType == nil {
		s.LeaveByType = map[string]int{}
	}
	if s.TrainingByType == nil {
		s.TrainingByType = map[string]int{}
	}
	if s.EmployeesByPosition == nil {
		s.EmployeesByPosition = []PositionCount{}
	}
	if s.RecentAttendanceSummary == nil {
		s.RecentAttendanceSummary = []AttendanceDay{}
	}

	now := h.now()
	analytics := gin.H{
		"total_employees":             s.TotalEmployees,
		"total_attendance":            s.TotalAttendance,
		"total_leaves":                s.TotalLeaves,
		"total_payroll":               money(s.TotalPayroll),
		"pending_leaves":              s.PendingLeaves,
		"approved_leaves":             s.ApprovedLeaves,
		"rejected_leaves":             s.RejectedLeaves,
		"total_overtime_requests":     s.TotalOvertimeRequests,
		"pending_overtime":            s.PendingOvertime,
		"total_overtime_hours":        money(s.TotalOvertimeHours),
		"total_training_programs":     s.TotalTrainingPrograms,
		"completed_training_programs": s.CompletedTrainingPrograms,
		"ongoing_training_programs":   s.OngoingTrainingPrograms,
		"total_training_cost":         money(s.TotalTrainingCost),
		"total_certifications":        s.TotalCertifications,
		"total_evaluations":           s.TotalEvaluations,
		"completed_evaluations":       s.CompletedEvaluations,
		"average_evaluation_score":    money(s.AverageEvaluationScore),
		"total_budget_allocated":      money(s.TotalBudgetAllocated),
		"total_budget_spent":          money(s.TotalBudgetSpent),
		"total_budget_remaining":      money(s.TotalBudgetRemaining),
		"department_budgets":          departments,
		"total_disciplinary_actions":  s.TotalDisciplinaryActions,
		"open_disciplinary_actions":   s.OpenDisciplinaryActions,
		"disciplinary_by_severity":    s.DisciplinaryBySeverity,
		"total_grievances":            s.TotalGrievances,
		"active_grievances":           s.ActiveGrievances,
		"resolved_grievances":         s.ResolvedGrievances,
		"grievances_by_priority":      s.GrievancesByPriority,
		"total_salary_requests":       s.TotalSalaryRequests,
		"pending_salary_requests":     s.PendingSalaryRequests,
		"employee_by_position":        s.EmployeesByPosition,
		"recent_attendance_summary":   s.RecentAttendanceSummary,
		"leave_by_type":               s.LeaveByType,
		"payroll_trend":               trend,
		"training_by_type":            s.TrainingByType,
		"top_performers":              performers,
		"report_generated_at":         now.Format("2006-01-02 15:04:05"),
		"fiscal_year":                 now.Format("2006"),
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"data":    analytics,
		"message": "Reports analytics generated successfully",
	})
}
