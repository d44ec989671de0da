package reports

// Snapshot carries the raw aggregates for one analytics run. The handler owns
// presentation; monetary values and scores stay numeric here and are formatted
// to two-decimal strings on the way out.
type Snapshot struct {
	TotalEmployees  int
	TotalAttendance int
	TotalLeaves     int
	TotalPayroll    float64

	PendingLeaves  int
	ApprovedLeaves int
	RejectedLeaves int

	TotalOvertimeRequests int
	PendingOvertime       int
	TotalOvertimeHours    float64

	TotalTrainingPrograms     int
	CompletedTrainingPrograms int
	OngoingTrainingPrograms   int
	TotalTrainingCost         float64
	TotalCertifications       int

	TotalEvaluations       int
	CompletedEvaluations   int
	AverageEvaluationScore float64

	TotalBudgetAllocated float64
	TotalBudgetSpent     float64
	TotalBudgetRemaining float64
	DepartmentBudgets    []DepartmentBudget

	TotalDisciplinaryActions int
	OpenDisciplinaryActions  int
	DisciplinaryBySeverity   map[string]int

	TotalGrievances      int
	ActiveGrievances     int
	ResolvedGrievances   int
	GrievancesByPriority map[string]int

	TotalSalaryRequests   int
	PendingSalaryRequests int

	EmployeesByPosition     []PositionCount
	RecentAttendanceSummary []AttendanceDay
	LeaveByType             map[string]int
	PayrollTrend            []PayrollMonth
	TrainingByType          map[string]int
	TopPerformers           []TopPerformer
}

type DepartmentBudget struct {
	Department      string
	Allocated       float64
	Spent           float64
	Remaining       float64
	PercentageSpent float64
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

type AttendanceDay struct {
	Date            string `json:"date"`
	UniqueEmployees int    `json:"unique_employees"`
	TotalLogs       int    `json:"total_logs"`
}

type PayrollMonth struct {
	Month         string
	PayslipsCount int
	TotalEarnings float64
}

type TopPerformer struct {
	EmployeeName     string
	OverallScore     float64
	EvaluationPeriod string
}
