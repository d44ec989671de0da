package training

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]TrainingProgram, error)
	Create(ctx context.Context, t *TrainingProgram) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeName resolves an activerecords id to its name; a miss returns
	// gorm.ErrRecordNotFound since enrollment requires an active employee.
	EmployeeName(ctx context.Context, employeeID int) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]TrainingProgram, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ProgramType != "" {
		q = q.Where("program_type = ?", f.ProgramType)
	}
	var trainings []TrainingProgram
	err := q.Order("date_enrolled DESC").Find(&trainings).Error
	return trainings, err
}

func (r *repository) Create(ctx context.Context, t *TrainingProgram) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&TrainingProgram{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&TrainingProgram{}, "id = ?", id).Error
}

func (r *repository) EmployeeName(ctx context.Context, employeeID int) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Select("name").
		Where("id = ?", employeeID).
		Take(&name).Error
	if err != nil {
		return "", err
	}
	return name, nil
}
