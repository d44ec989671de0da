package evaluation

// Evaluation is a row of employee_evaluations. The five rating columns hold
// 1-5 integers; overall_score is 1.00-5.00 when set and 0 when the client
// never supplied one. date_created and date_completed come from the database.
type Evaluation struct {
	ID                  int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID          *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName        string  `gorm:"column:employee_name" json:"employee_name"`
	EvaluatorName       string  `gorm:"column:evaluator_name" json:"evaluator_name"`
	EvaluationPeriod    string  `gorm:"column:evaluation_period" json:"evaluation_period"`
	TechnicalSkills     int     `gorm:"column:technical_skills" json:"technical_skills"`
	Communication       int     `gorm:"column:communication" json:"communication"`
	Teamwork            int     `gorm:"column:teamwork" json:"teamwork"`
	Reliability         int     `gorm:"column:reliability" json:"reliability"`
	ProblemSolving      int     `gorm:"column:problem_solving" json:"problem_solving"`
	OverallScore        float64 `gorm:"column:overall_score" json:"overall_score"`
	Strengths           *string `gorm:"column:strengths" json:"strengths"`
	AreasForImprovement *string `gorm:"column:areas_for_improvement" json:"areas_for_improvement"`
	GoalsNextPeriod     *string `gorm:"column:goals_next_period" json:"goals_next_period"`
	AdditionalComments  *string `gorm:"column:additional_comments" json:"additional_comments"`
	Status              string  `gorm:"column:status;->" json:"status"`
	DateCreated         string  `gorm:"column:date_created;->" json:"date_created"`
	DateCompleted       *string `gorm:"column:date_completed;->" json:"date_completed"`
}

func (Evaluation) TableName() string { return "employee_evaluations" }
