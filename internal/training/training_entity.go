package training

// TrainingProgram is a row of training_programs: one employee's enrollment in
// one program. date_enrolled is set by the database; date_completed is
// stamped when the status transitions to completed.
type TrainingProgram struct {
	ID                    int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID            int     `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName          string  `gorm:"column:employee_name" json:"employee_name"`
	ProgramName           string  `gorm:"column:program_name" json:"program_name"`
	ProgramType           *string `gorm:"column:program_type" json:"program_type"`
	StartDate             string  `gorm:"column:start_date" json:"start_date"`
	EndDate               *string `gorm:"column:end_date" json:"end_date"`
	DurationHours         *int    `gorm:"column:duration_hours" json:"duration_hours"`
	Status                string  `gorm:"column:status" json:"status"`
	CompletionPercentage  int     `gorm:"column:completion_percentage" json:"completion_percentage"`
	TrainerName           *string `gorm:"column:trainer_name" json:"trainer_name"`
	Location              *string `gorm:"column:location" json:"location"`
	Cost                  float64 `gorm:"column:cost" json:"cost"`
	CertificationObtained bool    `gorm:"column:certification_obtained" json:"certification_obtained"`
	CertificationName     *string `gorm:"column:certification_name" json:"certification_name"`
	Notes                 *string `gorm:"column:notes" json:"notes"`
	DateEnrolled          string  `gorm:"column:date_enrolled;->" json:"date_enrolled"`
	DateCompleted         *string `gorm:"column:date_completed;->" json:"date_completed"`
}

func (TrainingProgram) TableName() string { return "training_programs" }
