package evaluation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]Evaluation, error)
	Create(ctx context.Context, e *Evaluation) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeIDExists reports whether an activerecords row has this id.
	EmployeeIDExists(ctx context.Context, employeeID int) (bool, error)
	// EmployeeIDByName resolves a name against activerecords; a miss returns
	// (nil, nil) — the employee link is best-effort.
	EmployeeIDByName(ctx context.Context, name string) (*int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Evaluation, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeName != "" {
		q = q.Where("employee_name = ?", f.EmployeeName)
	}
	if f.Period != "" {
		q = q.Where("evaluation_period = ?", f.Period)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var evaluations []Evaluation
	err := q.Order("date_created DESC").Find(&evaluations).Error
	return evaluations, err
}

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Evaluation{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Evaluation{}, "id = ?", id).Error
}

func (r *repository) EmployeeIDExists(ctx context.Context, employeeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeIDByName(ctx context.Context, name string) (*int, error) {
	var id int
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Select("id").
		Where("name = ?", name).
		Limit(1).
		Take(&id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}
