package attendance

type CreateAttendanceRequest struct {
	EmployeeName   *string `json:"employee_name"`
	EmployeeID     *int    `json:"employee_id"`
	AttendanceDate *string `json:"attendance_date"`
	AttendanceTime *string `json:"attendance_time"`
	AttendanceType *string `json:"attendance_type"`
	Notes          *string `json:"notes"`
}

type DeleteAttendanceRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	Date       string
	EmployeeID string
}
