package benefit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]Benefit, error)
	Create(ctx context.Context, b *Benefit) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeName resolves an active-records id; gorm.ErrRecordNotFound
	// propagates so the handler can reject unknown employees.
	EmployeeName(ctx context.Context, employeeID int) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Benefit, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BenefitType != "" {
		q = q.Where("benefit_type = ?", f.BenefitType)
	}
	var benefits []Benefit
	err := q.Order("start_date DESC, date_created DESC").Find(&benefits).Error
	return benefits, err
}

func (r *repository) Create(ctx context.Context, b *Benefit) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Benefit{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Benefit{}, "id = ?", id).Error
}

func (r *repository) EmployeeName(ctx context.Context, employeeID int) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Select("name").
		Where("id = ?", employeeID).
		Take(&name).Error
	return name, err
}
