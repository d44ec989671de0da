package evaluation

type CreateEvaluationRequest struct {
	EmployeeID          *int     `json:"employee_id"`
	EmployeeName        *string  `json:"employee_name"`
	EvaluatorName       *string  `json:"evaluator_name"`
	EvaluationPeriod    *string  `json:"evaluation_period"`
	TechnicalSkills     *int     `json:"technical_skills"`
	Communication       *int     `json:"communication"`
	Teamwork            *int     `json:"teamwork"`
	Reliability         *int     `json:"reliability"`
	ProblemSolving      *int     `json:"problem_solving"`
	OverallScore        *float64 `json:"overall_score"`
	Strengths           *string  `json:"strengths"`
	AreasForImprovement *string  `json:"areas_for_improvement"`
	GoalsNextPeriod     *string  `json:"goals_next_period"`
	AdditionalComments  *string  `json:"additional_comments"`
}

type UpdateEvaluationRequest struct {
	ID                  *int     `json:"id"`
	Status              *string  `json:"status"`
	Strengths           *string  `json:"strengths"`
	AreasForImprovement *string  `json:"areas_for_improvement"`
	GoalsNextPeriod     *string  `json:"goals_next_period"`
	AdditionalComments  *string  `json:"additional_comments"`
	TechnicalSkills     *int     `json:"technical_skills"`
	Communication       *int     `json:"communication"`
	Teamwork            *int     `json:"teamwork"`
	Reliability         *int     `json:"reliability"`
	ProblemSolving      *int     `json:"problem_solving"`
	OverallScore        *float64 `json:"overall_score"`
}

type DeleteEvaluationRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeName string
	Period       string
	Status       string
}
