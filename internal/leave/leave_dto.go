package leave

type CreateLeaveRequest struct {
	EmployeeName *string `json:"employee_name"`
	LeaveType    *string `json:"leave_type"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Reason       *string `json:"reason"`
	Status       *string `json:"status"`
}

type UpdateLeaveRequest struct {
	ID     *int    `json:"id"`
	Status *string `json:"status"`
	Reason *string `json:"reason"`
}

type DeleteLeaveRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeName string
	Status       string
}
