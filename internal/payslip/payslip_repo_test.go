package payslip_test

import (
	"context"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/payslip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gdb, mock
}

// The generated id must come from the connection that ran the insert;
// LAST_INSERT_ID on another pool connection would echo 0 or a concurrent
// request's id. Ordered expectations pin the insert and the id read to one
// statement sequence.
func TestRepository_CreateGenerated_IDFromSameConnection(t *testing.T) {
	gdb, mock := newMockGorm(t)
	repo := payslip.NewRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payslip_history`").
		WillReturnResult(sqlmock.NewResult(88, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT LAST_INSERT_ID").
		WillReturnRows(sqlmock.NewRows([]string{"LAST_INSERT_ID()"}).AddRow(88))

	p := &payslip.Payslip{EmployeeName: "Lara Reyes", Position: "Clerk", Earnings: 4200.50}
	err := repo.CreateGenerated(context.Background(), p)

	assert.NoError(t, err)
	assert.Equal(t, 88, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateGenerated_InsertError(t *testing.T) {
	gdb, mock := newMockGorm(t)
	repo := payslip.NewRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `payslip_history`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	p := &payslip.Payslip{EmployeeName: "Lara Reyes", Position: "Clerk", Earnings: 4200.50}
	err := repo.CreateGenerated(context.Background(), p)

	assert.Error(t, err)
	assert.Zero(t, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
