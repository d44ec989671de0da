package overtime

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]OvertimeRequest, error)
	Create(ctx context.Context, o *OvertimeRequest) error
	// UpdateFields applies the given columns and stamps date_updated.
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeNameByID resolves an activerecords id; a miss returns
	// (nil, nil) — the name column is best-effort.
	EmployeeNameByID(ctx context.Context, employeeID int) (*string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]OvertimeRequest, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		q = q.Where("ot_date = ?", f.Date)
	}
	var requests []OvertimeRequest
	err := q.Order("date_requested DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Create(ctx context.Context, o *OvertimeRequest) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	fields["date_updated"] = gorm.Expr("CURRENT_TIMESTAMP")
	return r.db.WithContext(ctx).
		Model(&OvertimeRequest{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&OvertimeRequest{}, "id = ?", id).Error
}

func (r *repository) EmployeeNameByID(ctx context.Context, employeeID int) (*string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("activerecords").
		Select("name").
		Where("id = ?", employeeID).
		Limit(1).
		Take(&name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &name, nil
}
