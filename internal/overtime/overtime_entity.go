package overtime

// OvertimeRequest is a row of overtime_requests. employee_name is resolved
// from activerecords at creation and stays null when the id has no match.
type OvertimeRequest struct {
	ID            int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID    int     `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName  *string `gorm:"column:employee_name" json:"employee_name"`
	OTDate        string  `gorm:"column:ot_date" json:"ot_date"`
	Hours         float64 `gorm:"column:hours" json:"hours"`
	Reason        *string `gorm:"column:reason" json:"reason"`
	Status        string  `gorm:"column:status" json:"status"`
	DateRequested string  `gorm:"column:date_requested;->" json:"date_requested"`
	DateUpdated   string  `gorm:"column:date_updated;->" json:"date_updated"`
}

func (OvertimeRequest) TableName() string { return "overtime_requests" }
