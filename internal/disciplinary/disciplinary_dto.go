package disciplinary

type CreateDisciplinaryRequest struct {
	EmployeeID       *int    `json:"employee_id"`
	EmployeeName     *string `json:"employee_name"`
	ActionType       *string `json:"action_type"`
	Severity         *string `json:"severity"`
	ViolationType    *string `json:"violation_type"`
	IncidentDate     *string `json:"incident_date"`
	Description      *string `json:"description"`
	ActionTaken      *string `json:"action_taken"`
	ReportedBy       *string `json:"reported_by"`
	WitnessNames     *string `json:"witness_names"`
	FollowUpRequired *bool   `json:"follow_up_required"`
	FollowUpDate     *string `json:"follow_up_date"`
	FollowUpNotes    *string `json:"follow_up_notes"`
	Status           *string `json:"status"`
	ResolutionNotes  *string `json:"resolution_notes"`
	CreatedBy        *string `json:"created_by"`
}

type UpdateDisciplinaryRequest struct {
	ID               *int    `json:"id"`
	Status           *string `json:"status"`
	Severity         *string `json:"severity"`
	ActionType       *string `json:"action_type"`
	Description      *string `json:"description"`
	ActionTaken      *string `json:"action_taken"`
	ViolationType    *string `json:"violation_type"`
	WitnessNames     *string `json:"witness_names"`
	FollowUpNotes    *string `json:"follow_up_notes"`
	ResolutionNotes  *string `json:"resolution_notes"`
	ReportedBy       *string `json:"reported_by"`
	CreatedBy        *string `json:"created_by"`
	IncidentDate     *string `json:"incident_date"`
	FollowUpDate     *string `json:"follow_up_date"`
	FollowUpRequired *bool   `json:"follow_up_required"`
}

type DeleteDisciplinaryRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeID string
	Status     string
	ActionType string
	Severity   string
}
