package attendance

// AttendanceRecord is a row of attendance_records: one check-in or check-out
// event per row, keyed by a 5-digit surrogate id.
type AttendanceRecord struct {
	ID             int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID     int     `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName   string  `gorm:"column:employee_name" json:"employee_name"`
	AttendanceDate string  `gorm:"column:attendance_date" json:"attendance_date"`
	AttendanceTime string  `gorm:"column:attendance_time" json:"attendance_time"`
	AttendanceType string  `gorm:"column:attendance_type" json:"attendance_type"`
	Notes          *string `gorm:"column:notes" json:"notes"`
}

func (AttendanceRecord) TableName() string { return "attendance_records" }
