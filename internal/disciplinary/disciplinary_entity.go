package disciplinary

// DisciplinaryAction is a row of disciplinary_actions. date_created comes
// from the database; employee_id is taken from the request when supplied,
// otherwise resolved by name and left null when neither matches.
type DisciplinaryAction struct {
	ID               int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID       *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName     string  `gorm:"column:employee_name" json:"employee_name"`
	ActionType       string  `gorm:"column:action_type" json:"action_type"`
	Severity         string  `gorm:"column:severity" json:"severity"`
	ViolationType    *string `gorm:"column:violation_type" json:"violation_type"`
	IncidentDate     string  `gorm:"column:incident_date" json:"incident_date"`
	Description      string  `gorm:"column:description" json:"description"`
	ActionTaken      string  `gorm:"column:action_taken" json:"action_taken"`
	ReportedBy       string  `gorm:"column:reported_by" json:"reported_by"`
	WitnessNames     *string `gorm:"column:witness_names" json:"witness_names"`
	FollowUpRequired bool    `gorm:"column:follow_up_required" json:"follow_up_required"`
	FollowUpDate     *string `gorm:"column:follow_up_date" json:"follow_up_date"`
	FollowUpNotes    *string `gorm:"column:follow_up_notes" json:"follow_up_notes"`
	Status           string  `gorm:"column:status" json:"status"`
	ResolutionNotes  *string `gorm:"column:resolution_notes" json:"resolution_notes"`
	CreatedBy        *string `gorm:"column:created_by" json:"created_by"`
	DateCreated      string  `gorm:"column:date_created;->" json:"date_created"`
}

func (DisciplinaryAction) TableName() string { return "disciplinary_actions" }
