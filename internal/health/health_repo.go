package health

import (
	"context"

	"gorm.io/gorm"
)

// RequiredTables is every table the API touches; the introspection endpoint
// reports exists/missing per table so a half-migrated database is visible at
// a glance.
var RequiredTables = []string{
	"activerecords",
	"employeesalaryrequests",
	"deletedrecords",
	"payslip_history",
	"leave_requests",
	"employee_evaluations",
	"attendance_records",
	"budget",
	"overtime_requests",
	"training_programs",
	"disciplinary_actions",
	"grievances",
	"benefits",
}

//go:generate mockgen -source=health_repo.go -destination=mock/health_repo_mock.go -package=mock
type Repository interface {
	Databases(ctx context.Context) ([]string, error)
	Tables(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Databases(ctx context.Context) ([]string, error) {
	var databases []string
	err := r.db.WithContext(ctx).Raw("SHOW DATABASES").Scan(&databases).Error
	return databases, err
}

func (r *repository) Tables(ctx context.Context) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).Raw("SHOW TABLES").Scan(&tables).Error
	return tables, err
}
