package budget

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=budget_repo.go -destination=mock/budget_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]Budget, error)
	// Exists reports whether a budget row already covers this department and
	// fiscal year.
	Exists(ctx context.Context, department, fiscalYear string) (bool, error)
	Create(ctx context.Context, b *Budget) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Budget, error) {
	q := r.db.WithContext(ctx)
	if f.FiscalYear != "" {
		q = q.Where("fiscal_year = ?", f.FiscalYear)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	var budgets []Budget
	err := q.Order("fiscal_year DESC, department ASC").Find(&budgets).Error
	return budgets, err
}

func (r *repository) Exists(ctx context.Context, department, fiscalYear string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Budget{}).
		Where("department = ? AND fiscal_year = ?", department, fiscalYear).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Budget{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Budget{}, "id = ?", id).Error
}
