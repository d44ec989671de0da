package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindAggregated(ctx context.Context) ([]Aggregate, error)
	FindByID(ctx context.Context, id int) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	// MoveToDeleted copies the row into deletedrecords, then removes the
	// original. Copy first: a failed copy must leave the record in place.
	MoveToDeleted(ctx context.Context, e *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindAggregated(ctx context.Context) ([]Aggregate, error) {
	var rows []Aggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			name,
			position,
			COUNT(*) as task_count,
			SUM(earnings) as total_earnings,
			MAX(work_date) as last_work_date
		FROM activerecords
		GROUP BY name, position
		ORDER BY last_work_date DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) MoveToDeleted(ctx context.Context, e *Employee) error {
	if err := r.db.WithContext(ctx).Table("deletedrecords").Create(e).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", e.ID).Error
}
