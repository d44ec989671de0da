package benefit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/benefit"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findAllFn      func(ctx context.Context, f benefit.ListFilter) ([]benefit.Benefit, error)
	createFn       func(ctx context.Context, b *benefit.Benefit) error
	updateFieldsFn func(ctx context.Context, id int, fields map[string]any) error
	deleteFn       func(ctx context.Context, id int) error
	employeeNameFn func(ctx context.Context, employeeID int) (string, error)
}

func (f *fakeRepo) FindAll(ctx context.Context, fl benefit.ListFilter) ([]benefit.Benefit, error) {
	return f.findAllFn(ctx, fl)
}
func (f *fakeRepo) Create(ctx context.Context, b *benefit.Benefit) error {
	return f.createFn(ctx, b)
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

func newHandler(repo *fakeRepo) *benefit.Handler {
	return benefit.NewHandler(repo, randomid.NewGenerator(fakeIDStore{}))
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

	var created *benefit.Benefit
	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			assert.Equal(t, 12345, employeeID)
			return "Maria Cruz", nil
		},
		createFn: func(ctx context.Context, b *benefit.Benefit) error {
			created = b
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/benefits",
		`{"employee_id":12345,"benefit_type":"health_insurance","start_date":"2024-06-01","amount":2500}`)
	newHandler(repo).Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Benefit record created successfully!")
	if assert.NotNil(t, created) {
		assert.True(t, randomid.InRange(created.ID))
		assert.Equal(t, "active", created.Status)
		assert.Equal(t, "Maria Cruz", created.EmployeeName)
		assert.Equal(t, 2500.0, created.Amount)
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
	c.Request = jsonRequest(http.MethodPost, "/benefits",
		`{"employee_id":54321,"benefit_type":"health_insurance","start_date":"2024-06-01"}`)
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
		{"missing benefit_type", `{"employee_id":12345,"start_date":"2024-06-01"}`, "Missing required field: benefit_type"},
		{"bad employee id", `{"employee_id":99,"benefit_type":"health_insurance","start_date":"2024-06-01"}`, "Employee ID must be a 5-digit number"},
		{"bad start date", `{"employee_id":12345,"benefit_type":"health_insurance","start_date":"bad"}`, "Invalid start date format"},
		{"end before start", `{"employee_id":12345,"benefit_type":"health_insurance","start_date":"2024-06-01","end_date":"2024-05-01"}`, "End date cannot be before start date"},
		{"bad status", `{"employee_id":12345,"benefit_type":"health_insurance","start_date":"2024-06-01","status":"paused"}`, "Invalid status. Must be: active, inactive, expired, or cancelled"},
		{"negative amount", `{"employee_id":12345,"benefit_type":"health_insurance","start_date":"2024-06-01","amount":-1}`, "Amount must be a positive number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(http.MethodPost, "/benefits", tc.body)
			h.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got benefit.ListFilter
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, f benefit.ListFilter) ([]benefit.Benefit, error) {
			got = f
			return []benefit.Benefit{}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/benefits?status=active&benefit_type=health_insurance", nil)
	newHandler(repo).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "health_insurance", got.BenefitType)
	assert.Contains(t, w.Body.String(), "\"success\":true")
	assert.Contains(t, w.Body.String(), "\"data\"")
}

func TestHandler_Update(t *testing.T) {
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
	c.Request = jsonRequest(http.MethodPut, "/benefits", `{"id":66123,"status":"expired","amount":1800.50}`)
	newHandler(repo).Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Benefit record updated successfully!")
	assert.Equal(t, "expired", gotFields["status"])
	assert.Equal(t, 1800.50, gotFields["amount"])
}

func TestHandler_Update_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newHandler(&fakeRepo{})

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing id", `{"status":"active"}`, "Benefit ID is required"},
		{"bad status", `{"id":66123,"status":"paused"}`, "Invalid status"},
		{"negative amount", `{"id":66123,"amount":-5}`, "Amount must be a positive number"},
		{"nothing to update", `{"id":66123}`, "No valid fields to update"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(http.MethodPut, "/benefits", tc.body)
			h.Update(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID int
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int) error {
			gotID = id
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodDelete, "/benefits", `{"id":66123}`)
	newHandler(repo).Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 66123, gotID)
	assert.Contains(t, w.Body.String(), "Benefit record deleted successfully!")
}

func TestHandler_LegacyAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var created *benefit.Benefit
	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "Maria Cruz", nil
		},
		createFn: func(ctx context.Context, b *benefit.Benefit) error {
			created = b
			return nil
		},
	}

	form := url.Values{}
	form.Set("employee_id", "12345")
	form.Set("benefit_type", "meal_allowance")
	form.Set("start_date", "2024-06-01")
	form.Set("amount", "150.75")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = formRequest("/?action=add_benefit", form)
	newHandler(repo).LegacyAdd(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Benefit record saved successfully!")
	if assert.NotNil(t, created) {
		assert.Equal(t, "meal_allowance", created.BenefitType)
		assert.Equal(t, 150.75, created.Amount)
		assert.Equal(t, "active", created.Status)
	}
}

func TestHandler_LegacyAdd_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		employeeNameFn: func(ctx context.Context, employeeID int) (string, error) {
			return "", gorm.ErrRecordNotFound
		},
	}
	h := newHandler(repo)

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = formRequest("/?action=add_benefit", url.Values{"employee_id": {"12345"}})
		h.LegacyAdd(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required fields: employee_id, benefit_type, start_date")
		assert.Contains(t, w.Body.String(), "\"success\":false")
	})

	t.Run("unknown employee uses short message", func(t *testing.T) {
		form := url.Values{}
		form.Set("employee_id", "54321")
		form.Set("benefit_type", "meal_allowance")
		form.Set("start_date", "2024-06-01")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = formRequest("/?action=add_benefit", form)
		h.LegacyAdd(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "\"message\":\"Employee ID not found\"")
	})

	t.Run("non-POST rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?action=add_benefit", nil)
		h.LegacyAdd(c)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, w.Body.String(), "Only POST method allowed")
	})
}
