package salaryrequest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/salaryrequest"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findAllFn      func(ctx context.Context) ([]salaryrequest.SalaryRequest, error)
	createFn       func(ctx context.Context, s *salaryrequest.SalaryRequest) error
	updateStatusFn func(ctx context.Context, id int, status string) error
	deleteFn       func(ctx context.Context, id int) error
	employeeNameFn func(ctx context.Context, employeeID int) (string, error)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]salaryrequest.SalaryRequest, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) Create(ctx context.Context, s *salaryrequest.SalaryRequest) error {
	return f.createFn(ctx, s)
}
func (f *fakeRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeRepo) DeleteByID(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) EmployeeName(ctx context.Context, employeeID int) (string, error) {
	return f.employeeNameFn(ctx, employeeID)
}

type fakeIDStore struct{}

func (fakeIDStore) IDExists(ctx context.Context, table string, id int) (bool, error) {
	return false, nil
}

func newHandler(repo *fakeRepo) *salaryrequest.Handler {
	return salaryrequest.NewHandler(repo, randomid.NewGenerator(fakeIDStore{}))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Create_WithEmployeeID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var created *salaryrequest.SalaryRequest
	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			assert.Equal(t, 12345, employeeID)
			return "Maria Cruz", nil
		},
		createFn: func(ctx context.Context, s *salaryrequest.SalaryRequest) error {
			created = s
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/salary-requests",
		`{"employee_id":12345,"employee_name":"Maria Cruz","requested_salary":25000,"status":"Pending"}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"success\":true")
	if assert.NotNil(t, created) {
		assert.True(t, randomid.InRange(created.ID))
		assert.Equal(t, 25000.0, created.RequestedSalary)
	}
}

func TestHandler_Create_NameMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "Juan Reyes", nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/salary-requests",
		`{"employee_id":12345,"employee_name":"Maria Cruz","requested_salary":25000}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not match")
}

func TestHandler_Create_UnknownEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "", gorm.ErrRecordNotFound
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/salary-requests",
		`{"employee_id":54321,"employee_name":"Maria Cruz","requested_salary":25000}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee ID not found in active records")
}

func TestHandler_Create_InvalidSalary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/salary-requests",
		`{"employee_name":"Maria Cruz","requested_salary":0}`)
	newHandler(&fakeRepo{}).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requested salary must be greater than 0")
}

func TestHandler_Update_CoercesUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotStatus string
	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, id int, status string) error {
			gotStatus = status
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/salary-requests", `{"id":12345,"status":"Escalated"}`)
	newHandler(repo).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pending", gotStatus)
}

func TestHandler_Update_AllowedStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotStatus string
	repo := &fakeRepo{
		updateStatusFn: func(ctx context.Context, id int, status string) error {
			gotStatus = status
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/salary-requests", `{"id":12345,"status":"Approved"}`)
	newHandler(repo).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Approved", gotStatus)
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int) error {
			assert.Equal(t, 12345, id)
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodDelete, "/salary-requests", `{"id":12345}`)
	newHandler(repo).Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"success\":true")
}
