package salaryrequest

type CreateSalaryRequest struct {
	EmployeeID      *int     `json:"employee_id"`
	EmployeeName    *string  `json:"employee_name"`
	RequestedSalary *float64 `json:"requested_salary"`
	Status          *string  `json:"status"`
	Actions         *string  `json:"actions"`
}

type UpdateSalaryRequest struct {
	ID     int     `json:"id"`
	Status *string `json:"status"`
}

type DeleteSalaryRequest struct {
	ID int `json:"id"`
}
