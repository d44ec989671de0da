package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sheyn018/Employee-Dashboard/internal/health"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	databasesFn func(ctx context.Context) ([]string, error)
	tablesFn    func(ctx context.Context) ([]string, error)
}

func (f *fakeRepo) Databases(ctx context.Context) ([]string, error) { return f.databasesFn(ctx) }
func (f *fakeRepo) Tables(ctx context.Context) ([]string, error)    { return f.tablesFn(ctx) }

func TestHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		databasesFn: func(ctx context.Context) ([]string, error) {
			return []string{"information_schema", "test"}, nil
		},
		tablesFn: func(ctx context.Context) ([]string, error) {
			return []string{"activerecords", "budget"}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	health.NewHandler(repo, "test", "localhost").Status(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status          string            `json:"status"`
		Message         string            `json:"message"`
		CurrentDatabase string            `json:"current_database"`
		Server          string            `json:"server"`
		AllDatabases    []string          `json:"all_databases"`
		AllTables       []string          `json:"all_tables_in_current_db"`
		RequiredTables  map[string]string `json:"required_tables_status"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Database connection successful!", body.Message)
	assert.Equal(t, "test", body.CurrentDatabase)
	assert.Equal(t, "localhost", body.Server)
	assert.Equal(t, []string{"information_schema", "test"}, body.AllDatabases)
	assert.Equal(t, "exists", body.RequiredTables["activerecords"])
	assert.Equal(t, "exists", body.RequiredTables["budget"])
	assert.Equal(t, "missing", body.RequiredTables["grievances"])
	assert.Len(t, body.RequiredTables, len(health.RequiredTables))
}

func TestHandler_Status_DBError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeRepo{
		databasesFn: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	health.NewHandler(repo, "test", "localhost").Status(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database connection failed")
}
