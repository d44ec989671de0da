package disciplinary

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=disciplinary_repo.go -destination=mock/disciplinary_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]DisciplinaryAction, error)
	Create(ctx context.Context, a *DisciplinaryAction) error
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
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

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]DisciplinaryAction, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ActionType != "" {
		q = q.Where("action_type = ?", f.ActionType)
	}
	if f.Severity != "" {
		q = q.Where("severity = ?", f.Severity)
	}
	var actions []DisciplinaryAction
	err := q.Order("incident_date DESC, date_created DESC").Find(&actions).Error
	return actions, err
}

func (r *repository) Create(ctx context.Context, a *DisciplinaryAction) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&DisciplinaryAction{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&DisciplinaryAction{}, "id = ?", id).Error
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
