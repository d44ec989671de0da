package overtime

type CreateOvertimeRequest struct {
	EmployeeID *int     `json:"employee_id"`
	OTDate     *string  `json:"ot_date"`
	Hours      *float64 `json:"hours"`
	Reason     *string  `json:"reason"`
	Status     *string  `json:"status"`
}

type UpdateOvertimeRequest struct {
	ID     *int     `json:"id"`
	Status *string  `json:"status"`
	Hours  *float64 `json:"hours"`
	Reason *string  `json:"reason"`
}

type DeleteOvertimeRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeID string
	Status     string
	Date       string
}
