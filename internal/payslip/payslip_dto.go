package payslip

type GeneratePayslipRequest struct {
	EmployeeName *string `json:"employee_name"`
}

type AddPayslipRequest struct {
	EmployeeID    *int     `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name"`
	Position      *string  `json:"position"`
	Earnings      *float64 `json:"earnings"`
	DateGenerated *string  `json:"date_generated"`
}

// UpdatePayslipRequest rewrites the four payslip columns; an omitted field
// writes NULL rather than a zero value.
type UpdatePayslipRequest struct {
	ID             int      `json:"id"`
	EmployeeName   *string  `json:"employee_name"`
	Position       *string  `json:"position"`
	Earnings       *float64 `json:"earnings"`
	TasksCompleted *int     `json:"tasks_completed"`
}

type DeletePayslipRequest struct {
	EmployeeName *string `json:"employee_name"`
	ID           *int    `json:"id"`
}
