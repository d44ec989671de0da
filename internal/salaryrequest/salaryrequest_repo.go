package salaryrequest

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryrequest_repo.go -destination=mock/salaryrequest_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]SalaryRequest, error)
	Create(ctx context.Context, s *SalaryRequest) error
	UpdateStatus(ctx context.Context, id int, status string) error
	DeleteByID(ctx context.Context, id int) error
	// EmployeeName resolves an activerecords id to its name, so the caller can
	// cross-check the name supplied with the request.
	EmployeeName(ctx context.Context, employeeID int) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRequest, error) {
	var requests []SalaryRequest
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) Create(ctx context.Context, s *SalaryRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) error {
	return r.db.WithContext(ctx).
		Model(&SalaryRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&SalaryRequest{}, "id = ?", id).Error
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
