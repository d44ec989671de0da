package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/attendance"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findAllFn        func(ctx context.Context, f attendance.ListFilter) ([]attendance.AttendanceRecord, error)
	createFn         func(ctx context.Context, a *attendance.AttendanceRecord) error
	deleteFn         func(ctx context.Context, id int) error
	employeeExistsFn func(ctx context.Context, employeeID int) (bool, error)
}

func (f *fakeRepo) FindAll(ctx context.Context, fl attendance.ListFilter) ([]attendance.AttendanceRecord, error) {
	return f.findAllFn(ctx, fl)
}
func (f *fakeRepo) Create(ctx context.Context, a *attendance.AttendanceRecord) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) DeleteByID(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}

type fakeIDStore struct{}

func (fakeIDStore) IDExists(ctx context.Context, table string, id int) (bool, error) {
	return false, nil
}

func newHandler(repo *fakeRepo) *attendance.Handler {
	return attendance.NewHandler(repo, randomid.NewGenerator(fakeIDStore{}))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var created *attendance.AttendanceRecord
	repo := &fakeRepo{
		employeeExistsFn: func(ctx context.Context, employeeID int) (bool, error) {
			assert.Equal(t, 12345, employeeID)
			return true, nil
		},
		createFn: func(ctx context.Context, a *attendance.AttendanceRecord) error {
			created = a
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/attendance",
		`{"employee_name":"Maria Cruz","employee_id":12345,"attendance_date":"2024-05-20","attendance_type":"check_in","attendance_time":"08:01:00"}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"attendance\"")
	if assert.NotNil(t, created) {
		assert.True(t, randomid.InRange(created.ID))
		assert.Equal(t, "check_in", created.AttendanceType)
	}
}

func TestHandler_Create_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newHandler(&fakeRepo{})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"employee_name":"Maria Cruz"}`, "Missing required fields"},
		{"bad type", `{"employee_name":"Maria Cruz","employee_id":12345,"attendance_date":"2024-05-20","attendance_type":"lunch","attendance_time":"12:00:00"}`, "Invalid attendance type"},
		{"bad employee id", `{"employee_name":"Maria Cruz","employee_id":99,"attendance_date":"2024-05-20","attendance_type":"check_in","attendance_time":"08:00:00"}`, "Employee ID must be a 5-digit number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(http.MethodPost, "/attendance", tc.body)
			h.Create(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestHandler_Create_UnknownEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeExistsFn: func(ctx context.Context, employeeID int) (bool, error) {
			return false, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/attendance",
		`{"employee_name":"Ghost","employee_id":54321,"attendance_date":"2024-05-20","attendance_type":"check_out","attendance_time":"17:00:00"}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee ID not found in active records")
}

func TestHandler_GetAll_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, f attendance.ListFilter) ([]attendance.AttendanceRecord, error) {
			assert.Equal(t, "2024-05-20", f.Date)
			assert.Equal(t, "12345", f.EmployeeID)
			return []attendance.AttendanceRecord{{ID: 1}}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance?date=2024-05-20&employee_id=12345", nil)
	newHandler(repo).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Delete_RequiresID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodDelete, "/attendance", `{}`)
	newHandler(&fakeRepo{}).Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Attendance record ID is required")
}
