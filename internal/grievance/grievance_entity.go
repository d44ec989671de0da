package grievance

// Grievance is a row of grievances. date_filed is supplied by the filer;
// employee_id stays null for anonymous filings unless the request carries one
// explicitly.
type Grievance struct {
	ID                  int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID          *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName        string  `gorm:"column:employee_name" json:"employee_name"`
	GrievanceType       string  `gorm:"column:grievance_type" json:"grievance_type"`
	Priority            string  `gorm:"column:priority" json:"priority"`
	Subject             string  `gorm:"column:subject" json:"subject"`
	Description         string  `gorm:"column:description" json:"description"`
	DateFiled           string  `gorm:"column:date_filed" json:"date_filed"`
	DesiredOutcome      *string `gorm:"column:desired_outcome" json:"desired_outcome"`
	AgainstPerson       *string `gorm:"column:against_person" json:"against_person"`
	AgainstDepartment   *string `gorm:"column:against_department" json:"against_department"`
	Witnesses           *string `gorm:"column:witnesses" json:"witnesses"`
	SupportingDocuments *string `gorm:"column:supporting_documents" json:"supporting_documents"`
	Status              string  `gorm:"column:status" json:"status"`
	AssignedTo          *string `gorm:"column:assigned_to" json:"assigned_to"`
	InvestigationNotes  *string `gorm:"column:investigation_notes" json:"investigation_notes"`
	ResolutionDetails   *string `gorm:"column:resolution_details" json:"resolution_details"`
	ResolutionDate      *string `gorm:"column:resolution_date" json:"resolution_date"`
	IsAnonymous         bool    `gorm:"column:is_anonymous" json:"is_anonymous"`
	Confidential        bool    `gorm:"column:confidential" json:"confidential"`
}

func (Grievance) TableName() string { return "grievances" }
