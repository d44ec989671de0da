package budget

type CreateBudgetRequest struct {
	Department      *string  `json:"department"`
	AllocatedAmount *float64 `json:"allocated_amount"`
	SpentAmount     *float64 `json:"spent_amount"`
	FiscalYear      *string  `json:"fiscal_year"`
	Notes           *string  `json:"notes"`
}

type UpdateBudgetRequest struct {
	ID              *int     `json:"id"`
	Department      *string  `json:"department"`
	AllocatedAmount *float64 `json:"allocated_amount"`
	SpentAmount     *float64 `json:"spent_amount"`
	FiscalYear      *string  `json:"fiscal_year"`
	Notes           *string  `json:"notes"`
}

type DeleteBudgetRequest struct {
	ID *int `json:"id"`
}

// ListFilter narrows the GET listing; zero values mean no filter.
type ListFilter struct {
	FiscalYear string
	Department string
}
