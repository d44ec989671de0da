package training

type CreateTrainingRequest struct {
	EmployeeID            *int     `json:"employee_id"`
	ProgramName           *string  `json:"program_name"`
	ProgramType           *string  `json:"program_type"`
	StartDate             *string  `json:"start_date"`
	EndDate               *string  `json:"end_date"`
	DurationHours         *int     `json:"duration_hours"`
	Status                *string  `json:"status"`
	CompletionPercentage  *int     `json:"completion_percentage"`
	TrainerName           *string  `json:"trainer_name"`
	Location              *string  `json:"location"`
	Cost                  *float64 `json:"cost"`
	CertificationObtained *bool    `json:"certification_obtained"`
	CertificationName     *string  `json:"certification_name"`
	Notes                 *string  `json:"notes"`
}

type UpdateTrainingRequest struct {
	ID                    *int     `json:"id"`
	Status                *string  `json:"status"`
	CompletionPercentage  *int     `json:"completion_percentage"`
	EndDate               *string  `json:"end_date"`
	DurationHours         *int     `json:"duration_hours"`
	TrainerName           *string  `json:"trainer_name"`
	Location              *string  `json:"location"`
	Cost                  *float64 `json:"cost"`
	CertificationObtained *bool    `json:"certification_obtained"`
	CertificationName     *string  `json:"certification_name"`
	Notes                 *string  `json:"notes"`
	ProgramType           *string  `json:"program_type"`
}

type DeleteTrainingRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeID  string
	Status      string
	ProgramType string
}
