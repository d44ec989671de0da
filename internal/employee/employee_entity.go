package employee

// Employee is one unit of work (a shift) in the activerecords table. An
// employee accumulates many rows; payroll totals are aggregations over them.
type Employee struct {
	ID       int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"column:name" json:"name"`
	Position string  `gorm:"column:position" json:"position"`
	WorkDate string  `gorm:"column:work_date" json:"work_date"`
	TimeIn   string  `gorm:"column:time_in" json:"time_in"`
	TimeOut  string  `gorm:"column:time_out" json:"time_out"`
	Earnings float64 `gorm:"column:earnings" json:"earnings"`
}

func (Employee) TableName() string {
	return "activerecords"
}

// Aggregate is one row of the grouped payslip-table view.
type Aggregate struct {
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	TaskCount     int     `json:"task_count"`
	TotalEarnings float64 `json:"total_earnings"`
	LastWorkDate  string  `json:"last_work_date"`
}
