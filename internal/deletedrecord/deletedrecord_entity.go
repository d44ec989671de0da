package deletedrecord

// DeletedRecord mirrors an activerecords row that was soft-deleted by moving
// it into the deletedrecords table. Restoring moves it back.
type DeletedRecord struct {
	ID       int     `gorm:"column:id;primaryKey" json:"id"`
	Name     string  `gorm:"column:name" json:"name"`
	Position string  `gorm:"column:position" json:"position"`
	WorkDate string  `gorm:"column:work_date" json:"work_date"`
	TimeIn   string  `gorm:"column:time_in" json:"time_in"`
	TimeOut  string  `gorm:"column:time_out" json:"time_out"`
	Earnings float64 `gorm:"column:earnings" json:"earnings"`
}

func (DeletedRecord) TableName() string { return "deletedrecords" }
