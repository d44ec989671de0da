package reports

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reports_repo.go -destination=mock/reports_repo_mock.go -package=mock
type Repository interface {
	// Collect runs every aggregate in one pass. Queries execute sequentially
	// on the shared pool; the dashboard refreshes this at most once a minute.
	Collect(ctx context.Context) (*Snapshot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) count(ctx context.Context, query string, dst *int, args ...any) error {
	return r.db.WithContext(ctx).Raw(query, args...).Scan(dst).Error
}

func (r *repository) sum(ctx context.Context, query string, dst *float64, args ...any) error {
	return r.db.WithContext(ctx).Raw(query, args...).Scan(dst).Error
}

type keyCount struct {
	Key   string
	Count int
}

func (r *repository) groupCounts(ctx context.Context, query string) (map[string]int, error) {
	var rows []keyCount
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

func (r *repository) Collect(ctx context.Context) (*Snapshot, error) {
	s := &Snapshot{
		DepartmentBudgets:       []DepartmentBudget{},
		EmployeesByPosition:     []PositionCount{},
		RecentAttendanceSummary: []AttendanceDay{},
		PayrollTrend:            []PayrollMonth{},
		TopPerformers:           []TopPerformer{},
	}

	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM activerecords", &s.TotalEmployees},
		{"SELECT COUNT(*) FROM attendance_records", &s.TotalAttendance},
		{"SELECT COUNT(*) FROM leave_requests", &s.TotalLeaves},
		{"SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'", &s.PendingLeaves},
		{"SELECT COUNT(*) FROM leave_requests WHERE status = 'approved'", &s.ApprovedLeaves},
		{"SELECT COUNT(*) FROM leave_requests WHERE status = 'rejected'", &s.RejectedLeaves},
		{"SELECT COUNT(*) FROM overtime_requests", &s.TotalOvertimeRequests},
		{"SELECT COUNT(*) FROM overtime_requests WHERE status = 'pending'", &s.PendingOvertime},
		{"SELECT COUNT(*) FROM training_programs", &s.TotalTrainingPrograms},
		{"SELECT COUNT(*) FROM training_programs WHERE status = 'completed'", &s.CompletedTrainingPrograms},
		{"SELECT COUNT(*) FROM training_programs WHERE status = 'ongoing'", &s.OngoingTrainingPrograms},
		{"SELECT COUNT(*) FROM training_programs WHERE certification_obtained = 1", &s.TotalCertifications},
		{"SELECT COUNT(*) FROM employee_evaluations", &s.TotalEvaluations},
		{"SELECT COUNT(*) FROM employee_evaluations WHERE status = 'completed'", &s.CompletedEvaluations},
		{"SELECT COUNT(*) FROM disciplinary_actions", &s.TotalDisciplinaryActions},
		{"SELECT COUNT(*) FROM disciplinary_actions WHERE status = 'open'", &s.OpenDisciplinaryActions},
		{"SELECT COUNT(*) FROM grievances", &s.TotalGrievances},
		{"SELECT COUNT(*) FROM grievances WHERE status IN ('submitted', 'under_review', 'investigation')", &s.ActiveGrievances},
		{"SELECT COUNT(*) FROM grievances WHERE status = 'resolved'", &s.ResolvedGrievances},
		{"SELECT COUNT(*) FROM employeesalaryrequests", &s.TotalSalaryRequests},
		{"SELECT COUNT(*) FROM employeesalaryrequests WHERE status = 'Pending'", &s.PendingSalaryRequests},
	}
	for _, c := range counts {
		if err := r.count(ctx, c.query, c.dst); err != nil {
			return nil, err
		}
	}

	sums := []struct {
		query string
		dst   *float64
	}{
		{"SELECT COALESCE(SUM(earnings), 0) FROM payslip_history", &s.TotalPayroll},
		{"SELECT COALESCE(SUM(hours), 0) FROM overtime_requests WHERE status = 'approved'", &s.TotalOvertimeHours},
		{"SELECT COALESCE(SUM(cost), 0) FROM training_programs", &s.TotalTrainingCost},
		{"SELECT COALESCE(AVG(overall_score), 0) FROM employee_evaluations WHERE status = 'completed'", &s.AverageEvaluationScore},
		{"SELECT COALESCE(SUM(allocated_amount), 0) FROM budget", &s.TotalBudgetAllocated},
		{"SELECT COALESCE(SUM(spent_amount), 0) FROM budget", &s.TotalBudgetSpent},
		{"SELECT COALESCE(SUM(remaining_amount), 0) FROM budget", &s.TotalBudgetRemaining},
	}
	for _, q := range sums {
		if err := r.sum(ctx, q.query, q.dst); err != nil {
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT department,
		       allocated_amount AS allocated,
		       spent_amount AS spent,
		       remaining_amount AS remaining,
		       percentage_spent
		FROM budget
		ORDER BY allocated_amount DESC`).Scan(&s.DepartmentBudgets).Error; err != nil {
		return nil, err
	}

	var err error
	if s.DisciplinaryBySeverity, err = r.groupCounts(ctx,
		"SELECT severity AS `key`, COUNT(*) AS count FROM disciplinary_actions GROUP BY severity"); err != nil {
		return nil, err
	}
	if s.GrievancesByPriority, err = r.groupCounts(ctx,
		"SELECT priority AS `key`, COUNT(*) AS count FROM grievances WHERE status NOT IN ('resolved', 'closed', 'rejected') GROUP BY priority"); err != nil {
		return nil, err
	}
	if s.LeaveByType, err = r.groupCounts(ctx,
		"SELECT leave_type AS `key`, COUNT(*) AS count FROM leave_requests GROUP BY leave_type"); err != nil {
		return nil, err
	}
	if s.TrainingByType, err = r.groupCounts(ctx,
		"SELECT program_type AS `key`, COUNT(*) AS count FROM training_programs WHERE program_type IS NOT NULL GROUP BY program_type"); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT position, COUNT(*) AS count
		FROM activerecords
		GROUP BY position
		ORDER BY count DESC`).Scan(&s.EmployeesByPosition).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT employee_id) AS unique_employees,
		       COUNT(*) AS total_logs,
		       DATE(attendance_date) AS date
		FROM attendance_records
		WHERE attendance_date >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
		GROUP BY DATE(attendance_date)
		ORDER BY date DESC
		LIMIT 7`).Scan(&s.RecentAttendanceSummary).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT DATE_FORMAT(date_generated, '%Y-%m') AS month,
		       COUNT(*) AS payslips_count,
		       SUM(earnings) AS total_earnings
		FROM payslip_history
		WHERE date_generated >= DATE_SUB(CURDATE(), INTERVAL 6 MONTH)
		GROUP BY DATE_FORMAT(date_generated, '%Y-%m')
		ORDER BY month DESC`).Scan(&s.PayrollTrend).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT employee_name, overall_score, evaluation_period
		FROM employee_evaluations
		WHERE status = 'completed'
		ORDER BY overall_score DESC
		LIMIT 10`).Scan(&s.TopPerformers).Error; err != nil {
		return nil, err
	}

	return s, nil
}
