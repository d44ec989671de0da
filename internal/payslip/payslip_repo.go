package payslip

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	// FindAll lists payslip history, optionally only for one employee name.
	FindAll(ctx context.Context, employeeName string) ([]Payslip, error)
	// SummarizeEmployee rolls up activerecords for one employee: shift count
	// and total earnings, grouped by name and position.
	SummarizeEmployee(ctx context.Context, name string) (*EmployeeSummary, error)
	// CreateGenerated inserts a generated payslip stamped with the database
	// clock; the auto-increment id is written back into p.
	CreateGenerated(ctx context.Context, p *Payslip) error
	// Create inserts a directly supplied payslip with its id and timestamp.
	Create(ctx context.Context, p *Payslip) error
	Update(ctx context.Context, u UpdatePayslipRequest) error
	DeleteByEmployee(ctx context.Context, name string) error
	DeleteByID(ctx context.Context, id int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, employeeName string) ([]Payslip, error) {
	q := r.db.WithContext(ctx).Order("date_generated DESC")
	if employeeName != "" {
		q = q.Where("employee_name = ?", employeeName)
	}
	var payslips []Payslip
	err := q.Find(&payslips).Error
	return payslips, err
}

func (r *repository) SummarizeEmployee(ctx context.Context, name string) (*EmployeeSummary, error) {
	var summary EmployeeSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			name,
			position,
			COUNT(*) as tasks_completed,
			SUM(earnings) as total_earnings
		FROM activerecords
		WHERE name = ?
		GROUP BY name, position
	`, name).Take(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repository) CreateGenerated(ctx context.Context, p *Payslip) error {
	row := map[string]any{
		"employee_name":  p.EmployeeName,
		"position":       p.Position,
		"earnings":       p.Earnings,
		"date_generated": gorm.Expr("NOW()"),
	}
	// LAST_INSERT_ID is per-connection, so the insert and the read must not
	// be served by different pool connections.
	return r.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Model(&Payslip{}).Create(row).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT LAST_INSERT_ID()").Scan(&p.ID).Error
	})
}

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, u UpdatePayslipRequest) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"employee_name":   u.EmployeeName,
			"position":        u.Position,
			"earnings":        u.Earnings,
			"tasks_completed": u.TasksCompleted,
		}).Error
}

func (r *repository) DeleteByEmployee(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&Payslip{}, "employee_name = ?", name).Error
}

func (r *repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Payslip{}, "id = ?", id).Error
}
