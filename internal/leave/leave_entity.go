package leave

// LeaveRequest is a row of leave_requests. employee_id is resolved from
// activerecords by name at creation time and stays null when no match exists.
// date_requested and date_updated are filled by the database.
type LeaveRequest struct {
	ID            int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID    *int    `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName  string  `gorm:"column:employee_name" json:"employee_name"`
	LeaveType     string  `gorm:"column:leave_type" json:"leave_type"`
	StartDate     string  `gorm:"column:start_date" json:"start_date"`
	EndDate       string  `gorm:"column:end_date" json:"end_date"`
	Reason        *string `gorm:"column:reason" json:"reason"`
	Status        string  `gorm:"column:status" json:"status"`
	DateRequested string  `gorm:"column:date_requested;->" json:"date_requested"`
	DateUpdated   string  `gorm:"column:date_updated;->" json:"date_updated"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }
