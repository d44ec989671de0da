package grievance

type CreateGrievanceRequest struct {
	EmployeeID          *int    `json:"employee_id"`
	EmployeeName        *string `json:"employee_name"`
	GrievanceType       *string `json:"grievance_type"`
	Priority            *string `json:"priority"`
	Subject             *string `json:"subject"`
	Description         *string `json:"description"`
	DateFiled           *string `json:"date_filed"`
	DesiredOutcome      *string `json:"desired_outcome"`
	AgainstPerson       *string `json:"against_person"`
	AgainstDepartment   *string `json:"against_department"`
	Witnesses           *string `json:"witnesses"`
	SupportingDocuments *string `json:"supporting_documents"`
	Status              *string `json:"status"`
	AssignedTo          *string `json:"assigned_to"`
	InvestigationNotes  *string `json:"investigation_notes"`
	ResolutionDetails   *string `json:"resolution_details"`
	ResolutionDate      *string `json:"resolution_date"`
	IsAnonymous         *bool   `json:"is_anonymous"`
	Confidential        *bool   `json:"confidential"`
}

type UpdateGrievanceRequest struct {
	ID                  *int    `json:"id"`
	Status              *string `json:"status"`
	Priority            *string `json:"priority"`
	GrievanceType       *string `json:"grievance_type"`
	Subject             *string `json:"subject"`
	Description         *string `json:"description"`
	DesiredOutcome      *string `json:"desired_outcome"`
	AgainstPerson       *string `json:"against_person"`
	AgainstDepartment   *string `json:"against_department"`
	Witnesses           *string `json:"witnesses"`
	SupportingDocuments *string `json:"supporting_documents"`
	AssignedTo          *string `json:"assigned_to"`
	InvestigationNotes  *string `json:"investigation_notes"`
	ResolutionDetails   *string `json:"resolution_details"`
	DateFiled           *string `json:"date_filed"`
	ResolutionDate      *string `json:"resolution_date"`
	IsAnonymous         *bool   `json:"is_anonymous"`
	Confidential        *bool   `json:"confidential"`
}

type DeleteGrievanceRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeID    string
	Status        string
	GrievanceType string
	Priority      string
	AssignedTo    string
}
