package benefit

// Benefit is a row of benefits. employee_name is denormalized from
// activerecords at enrollment time; date_created comes from the database.
type Benefit struct {
	ID           int     `gorm:"column:id;primaryKey" json:"id"`
	EmployeeID   int     `gorm:"column:employee_id" json:"employee_id"`
	EmployeeName string  `gorm:"column:employee_name" json:"employee_name"`
	BenefitType  string  `gorm:"column:benefit_type" json:"benefit_type"`
	Description  *string `gorm:"column:description" json:"description"`
	Amount       float64 `gorm:"column:amount" json:"amount"`
	StartDate    string  `gorm:"column:start_date" json:"start_date"`
	EndDate      *string `gorm:"column:end_date" json:"end_date"`
	Status       string  `gorm:"column:status" json:"status"`
	Notes        *string `gorm:"column:notes" json:"notes"`
	DateCreated  string  `gorm:"column:date_created;->" json:"date_created"`
}

func (Benefit) TableName() string { return "benefits" }
