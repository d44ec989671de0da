package payslip

// Payslip is a row of payslip_history. Rows generated from activerecords use
// an auto-increment id; rows inserted directly via add-payslip carry a
// 5-digit surrogate id and an explicit date_generated.
type Payslip struct {
	ID             int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EmployeeID     *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName   string  `gorm:"column:employee_name" json:"employee_name"`
	Position       string  `gorm:"column:position" json:"position"`
	Earnings       float64 `gorm:"column:earnings" json:"earnings"`
	TasksCompleted int     `gorm:"column:tasks_completed" json:"tasks_completed"`
	DateGenerated  string  `gorm:"column:date_generated" json:"date_generated"`
}

func (Payslip) TableName() string { return "payslip_history" }

// EmployeeSummary is the per-employee rollup from activerecords used when a
// payslip is generated rather than inserted directly.
type EmployeeSummary struct {
	Name           string  `gorm:"column:name"`
	Position       string  `gorm:"column:position"`
	TasksCompleted int     `gorm:"column:tasks_completed"`
	TotalEarnings  float64 `gorm:"column:total_earnings"`
}
