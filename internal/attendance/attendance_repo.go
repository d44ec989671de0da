package attendance

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]AttendanceRecord, error)
	Create(ctx context.Context, a *AttendanceRecord) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeExists reports whether an activerecords row has this id.
	EmployeeExists(ctx context.Context, employeeID int) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]AttendanceRecord, error) {
	q := r.db.WithContext(ctx)
	if f.Date != "" {
		q = q.Where("attendance_date = ?", f.Date)
	}
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	var records []AttendanceRecord
	err := q.Order("attendance_date DESC, attendance_time DESC").Find(&records).Error
	return records, err
}

func (r *repository) Create(ctx context.Context, a *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&AttendanceRecord{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
