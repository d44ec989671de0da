package training_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findAllFn      func(ctx context.Context, f training.ListFilter) ([]training.TrainingProgram, error)
	createFn       func(ctx context.Context, t *training.TrainingProgram) error
	updateFieldsFn func(ctx context.Context, id int, fields map[string]any) error
	deleteFn       func(ctx context.Context, id int) error
	employeeNameFn func(ctx context.Context, employeeID int) (string, error)
}

func (f *fakeRepo) FindAll(ctx context.Context, fl training.ListFilter) ([]training.TrainingProgram, error) {
	return f.findAllFn(ctx, fl)
}
func (f *fakeRepo) Create(ctx context.Context, t *training.TrainingProgram) error {
	return f.createFn(ctx, t)
}
func (f *fakeRepo) UpdateFields(ctx context.Context, id int, fields map[string]any) error {
	return f.updateFieldsFn(ctx, id, fields)
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

func newHandler(repo *fakeRepo) *training.Handler {
	return training.NewHandler(repo, randomid.NewGenerator(fakeIDStore{}))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var created *training.TrainingProgram
	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			assert.Equal(t, 12345, employeeID)
			return "Maria Cruz", nil
		},
		createFn: func(ctx context.Context, tp *training.TrainingProgram) error {
			created = tp
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/training",
		`{"employee_id":12345,"program_name":"Food Safety","start_date":"2024-06-01","end_date":"2024-06-15"}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"training_program\"")
	if assert.NotNil(t, created) {
		assert.True(t, randomid.InRange(created.ID))
		assert.Equal(t, "enrolled", created.Status)
		assert.Equal(t, "Maria Cruz", created.EmployeeName)
	}
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
	c.Request = jsonRequest(http.MethodPost, "/training",
		`{"employee_id":54321,"program_name":"Food Safety","start_date":"2024-06-01"}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee ID not found in active records")
}

func TestHandler_Create_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "Maria Cruz", nil
		},
	}
	h := newHandler(repo)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"employee_id":12345}`, "Missing required fields"},
		{"bad employee id", `{"employee_id":99,"program_name":"Food Safety","start_date":"2024-06-01"}`, "Employee ID must be a 5-digit number"},
		{"end before start", `{"employee_id":12345,"program_name":"Food Safety","start_date":"2024-06-15","end_date":"2024-06-01"}`, "End date cannot be before start date"},
		{"bad status", `{"employee_id":12345,"program_name":"Food Safety","start_date":"2024-06-01","status":"paused"}`, "Invalid status"},
		{"bad completion", `{"employee_id":12345,"program_name":"Food Safety","start_date":"2024-06-01","completion_percentage":150}`, "Completion percentage must be between 0 and 100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(http.MethodPost, "/training", tc.body)
			h.Create(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestHandler_Update_CompletedStampsDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotFields map[string]any
	repo := &fakeRepo{
		updateFieldsFn: func(ctx context.Context, id int, fields map[string]any) error {
			gotFields = fields
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/training", `{"id":12345,"status":"completed","completion_percentage":100}`)
	newHandler(repo).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", gotFields["status"])
	assert.Equal(t, 100, gotFields["completion_percentage"])
	assert.Contains(t, gotFields, "date_completed")
}

func TestHandler_LegacyAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var created *training.TrainingProgram
	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "Maria Cruz", nil
		},
		createFn: func(ctx context.Context, tp *training.TrainingProgram) error {
			created = tp
			return nil
		},
	}

	form := url.Values{}
	form.Set("employee_id", "12345")
	form.Set("program_name", "Food Safety")
	form.Set("start_date", "2024-06-01")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/?action=add_training", form)
	newHandler(repo).LegacyAdd(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Training record saved successfully!")
	if assert.NotNil(t, created) {
		assert.Equal(t, "enrolled", created.Status)
	}
}

func TestHandler_LegacyAdd_UnknownEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "", gorm.ErrRecordNotFound
		},
	}

	form := url.Values{}
	form.Set("employee_id", "54321")
	form.Set("program_name", "Food Safety")
	form.Set("start_date", "2024-06-01")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/?action=add_training", form)
	newHandler(repo).LegacyAdd(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "\"success\":false")
	assert.Contains(t, w.Body.String(), "Employee ID not found")
}

func TestHandler_LegacyList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, f training.ListFilter) ([]training.TrainingProgram, error) {
			return []training.TrainingProgram{{ID: 12345, ProgramName: "Food Safety"}}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?action=get_training", nil)
	newHandler(repo).LegacyList(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"data\"")
}
