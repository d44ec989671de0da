package benefit

type CreateBenefitRequest struct {
	EmployeeID  *int     `json:"employee_id"`
	BenefitType *string  `json:"benefit_type"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

type UpdateBenefitRequest struct {
	ID          *int     `json:"id"`
	Status      *string  `json:"status"`
	BenefitType *string  `json:"benefit_type"`
	Description *string  `json:"description"`
	Notes       *string  `json:"notes"`
	Amount      *float64 `json:"amount"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
}

type DeleteBenefitRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	EmployeeID  string
	Status      string
	BenefitType string
}
