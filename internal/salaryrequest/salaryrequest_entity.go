package salaryrequest

// SalaryRequest is a row of employeesalaryrequests. The id is a 5-digit
// surrogate drawn at insert time; date_requested is filled by the database.
type SalaryRequest struct {
	ID              int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID      *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName    string  `gorm:"column:employee_name" json:"employee_name"`
	RequestedSalary float64 `gorm:"column:requested_salary" json:"requested_salary"`
	Status          *string `gorm:"column:status" json:"status"`
	Actions         *string `gorm:"column:actions" json:"actions"`
	DateRequested   string  `gorm:"column:date_requested;->" json:"date_requested"`
}

func (SalaryRequest) TableName() string { return "employeesalaryrequests" }
