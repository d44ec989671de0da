package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		endpoint string
		pathID   int
	}{
		{"root", "/", "", 0},
		{"plain endpoint", "/employees", "employees", 0},
		{"nested prefix", "/hr/api/employees", "employees", 0},
		{"numeric id", "/evaluations/54321", "evaluations", 54321},
		{"bare number stays endpoint", "/54321", "54321", 0},
		{"api.php is root", "/api.php", "", 0},
		{"api without extension is root", "/api", "", 0},
		{"trailing slash", "/budget/", "budget", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint, pathID := resolve(tc.path)
			assert.Equal(t, tc.endpoint, endpoint)
			assert.Equal(t, tc.pathID, pathID)
		})
	}
}

// testDispatcher wires stub handlers so routing can be exercised without the
// repo layer.
func testDispatcher() (*dispatcher, *map[string]string) {
	hits := map[string]string{}
	record := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id, ok := c.Get(PathIDKey); ok {
				hits["path_id"] = "set"
				_ = id
			}
			hits["handler"] = name
			c.JSON(http.StatusOK, gin.H{"handler": name})
		}
	}

	d := &dispatcher{
		status: record("status"),
		routes: map[string]route{
			"employees": {methods: map[string]gin.HandlerFunc{
				http.MethodGet: record("employees.get"),
			}},
			"evaluations": {methods: map[string]gin.HandlerFunc{
				http.MethodDelete: record("evaluations.delete"),
			}},
			"reports": {
				methods:    map[string]gin.HandlerFunc{http.MethodGet: record("reports.get")},
				notAllowed: "Only GET method allowed for reports",
			},
		},
		actions: map[string]gin.HandlerFunc{
			"get_training": record("action.get_training"),
		},
	}
	return d, &hits
}

func newTestEngine(d *dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Any("/*path", d.dispatch)
	return engine
}

func TestDispatch_RootServesStatus(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "status", (*hits)["handler"])
}

func TestDispatch_APIPhpServesStatus(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api.php", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "status", (*hits)["handler"])
}

func TestDispatch_AliasResolution(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/activerecords", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "employees.get", (*hits)["handler"])
}

func TestDispatch_NumericPathSegment(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/evaluations/54321", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "evaluations.delete", (*hits)["handler"])
	assert.Equal(t, "set", (*hits)["path_id"])
}

func TestDispatch_ActionBeatsPath(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?action=get_training", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "action.get_training", (*hits)["handler"])
}

func TestDispatch_UnknownActionFallsThrough(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?action=bogus", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "employees.get", (*hits)["handler"])
}

func TestDispatch_UnknownActionOnRootIsNotFound(t *testing.T) {
	d, hits := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?action=bogus", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
	assert.Contains(t, w.Body.String(), "available_endpoints")
	assert.Empty(t, (*hits)["handler"])
}

func TestDispatch_UnknownEndpoint(t *testing.T) {
	d, _ := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/timesheets", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
	assert.Contains(t, w.Body.String(), "available_endpoints")
	assert.Contains(t, w.Body.String(), "payslip-history")
}

func TestDispatch_MethodNotAllowed(t *testing.T) {
	d, _ := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/employees", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Method not allowed")
}

func TestDispatch_MethodNotAllowed_EndpointMessage(t *testing.T) {
	d, _ := testDispatcher()
	engine := newTestEngine(d)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "Only GET method allowed for reports")
}
