package budget

// Budget is a row of the budget table. Unlike the record tables this one uses
// a plain auto-increment id; (department, fiscal_year) is unique.
type Budget struct {
	ID              int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Department      string  `gorm:"column:department" json:"department"`
	AllocatedAmount float64 `gorm:"column:allocated_amount" json:"allocated_amount"`
	SpentAmount     float64 `gorm:"column:spent_amount" json:"spent_amount"`
	FiscalYear      string  `gorm:"column:fiscal_year" json:"fiscal_year"`
	Notes           *string `gorm:"column:notes" json:"notes"`
}

func (Budget) TableName() string { return "budget" }
