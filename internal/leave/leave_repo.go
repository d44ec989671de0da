package leave

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, f ListFilter) ([]LeaveRequest, error)
	Create(ctx context.Context, l *LeaveRequest) error
	// UpdateFields applies the given columns and stamps date_updated.
	UpdateFields(ctx context.Context, id int, fields map[string]any) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeIDByName resolves a name against activerecords; a miss returns
	// (nil, nil) since the employee link is best-effort here.
	EmployeeIDByName(ctx context.Context, name string) (*int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx)
	if f.EmployeeName != "" {
		q = q.Where("employee_name = ?", f.EmployeeName)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var requests []LeaveRequest
	err := q.Order("date_requested DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	fields["date_updated"] = gorm.Expr("CURRENT_TIMESTAMP")
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&LeaveRequest{}, "id = ?", id).Error
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
