package grievance

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=grievance_repo.go -destination=mock/grievance_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]Grievance, error)
	Create(ctx context.Context, g *Grievance) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeIDByName resolves a name against activerecords; a miss returns
	// (nil, nil) — the grievance is still filed without a link.
	EmployeeIDByName(ctx context.Context, name string) (*int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Grievance, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.GrievanceType != "" {
		q = q.Where("grievance_type = ?", f.GrievanceType)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}
	var grievances []Grievance
	err := q.Order("priority DESC, date_filed DESC").Find(&grievances).Error
	return grievances, err
}

func (r *repository) Create(ctx context.Context, g *Grievance) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Grievance{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Grievance{}, "id = ?", id).Error
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
