package employee

// CreateEmployeeRequest covers POST /employees and POST /new-employee; fields
// are pointers so a missing key can be told apart from a zero value.
type CreateEmployeeRequest struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	WorkDate *string  `json:"work_date"`
	TimeIn   *string  `json:"time_in"`
	TimeOut  *string  `json:"time_out"`
	Earnings *float64 `json:"earnings"`
}

func (r CreateEmployeeRequest) complete() bool {
	return r.Name != nil && r.Position != nil && r.WorkDate != nil &&
		r.TimeIn != nil && r.TimeOut != nil && r.Earnings != nil
}

type DeleteEmployeeRequest struct {
	ID *int `json:"id"`
}
