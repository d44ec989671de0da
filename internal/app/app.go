package app

import (
	"github.com/sheyn018/Employee-Dashboard/internal/attendance"
	"github.com/sheyn018/Employee-Dashboard/internal/benefit"
	"github.com/sheyn018/Employee-Dashboard/internal/budget"
	"github.com/sheyn018/Employee-Dashboard/internal/config"
	"github.com/sheyn018/Employee-Dashboard/internal/deletedrecord"
	"github.com/sheyn018/Employee-Dashboard/internal/disciplinary"
	"github.com/sheyn018/Employee-Dashboard/internal/employee"
	"github.com/sheyn018/Employee-Dashboard/internal/evaluation"
	"github.com/sheyn018/Employee-Dashboard/internal/grievance"
	"github.com/sheyn018/Employee-Dashboard/internal/health"
	"github.com/sheyn018/Employee-Dashboard/internal/leave"
	"github.com/sheyn018/Employee-Dashboard/internal/middleware"
	"github.com/sheyn018/Employee-Dashboard/internal/overtime"
	"github.com/sheyn018/Employee-Dashboard/internal/payslip"
	"github.com/sheyn018/Employee-Dashboard/internal/reports"
	"github.com/sheyn018/Employee-Dashboard/internal/router"
	"github.com/sheyn018/Employee-Dashboard/internal/salaryrequest"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/connection"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/training"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Build connects the database and assembles the full engine: repositories,
// handlers, middleware chain, dispatcher.
func Build(cfg config.Config) (*gin.Engine, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, 5,
	)
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connection established",
		zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))

	ids := randomid.NewGenerator(randomid.NewStore(db))

	handlers := router.Handlers{
		Health:        health.NewHandler(health.NewRepository(db), cfg.DBName, cfg.DBHost),
		Employee:      employee.NewHandler(employee.NewRepository(db), ids),
		DeletedRecord: deletedrecord.NewHandler(deletedrecord.NewRepository(db)),
		SalaryRequest: salaryrequest.NewHandler(salaryrequest.NewRepository(db), ids),
		Payslip:       payslip.NewHandler(payslip.NewRepository(db), ids),
		Leave:         leave.NewHandler(leave.NewRepository(db), ids),
		Overtime:      overtime.NewHandler(overtime.NewRepository(db), ids),
		Evaluation:    evaluation.NewHandler(evaluation.NewRepository(db), ids),
		Attendance:    attendance.NewHandler(attendance.NewRepository(db), ids),
		Budget:        budget.NewHandler(budget.NewRepository(db)),
		Training:      training.NewHandler(training.NewRepository(db), ids),
		Disciplinary:  disciplinary.NewHandler(disciplinary.NewRepository(db), ids),
		Grievance:     grievance.NewHandler(grievance.NewRepository(db), ids),
		Benefit:       benefit.NewHandler(benefit.NewRepository(db), ids),
		Reports:       reports.NewHandler(reports.NewRepository(db)),
	}

	engine := router.New(handlers,
		middleware.CORS(),
		middleware.RequestID(),
		middleware.RequestLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
	)
	return engine, nil
}
