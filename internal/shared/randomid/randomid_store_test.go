package randomid

import (
	"context"
	"testing"

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

func TestStore_IDExists_Taken(t *testing.T) {
	gdb, mock := newMockGorm(t)
	store := NewStore(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `leave_requests` WHERE id = \\?").
		WithArgs(77777).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	taken, err := store.IDExists(context.Background(), "leave_requests", 77777)
	assert.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_IDExists_Free(t *testing.T) {
	gdb, mock := newMockGorm(t)
	store := NewStore(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `benefits` WHERE id = \\?").
		WithArgs(12345).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	taken, err := store.IDExists(context.Background(), "benefits", 12345)
	assert.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
