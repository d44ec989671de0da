// Package router reproduces the single-entrypoint dispatch the dashboard
// pages call: one wildcard route, query-string actions for the oldest pages,
// endpoint aliases, and a trailing numeric path segment treated as a record
// id rather than part of the endpoint name.
package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sheyn018/Employee-Dashboard/internal/attendance"
	"github.com/sheyn018/Employee-Dashboard/internal/benefit"
	"github.com/sheyn018/Employee-Dashboard/internal/budget"
	"github.com/sheyn018/Employee-Dashboard/internal/deletedrecord"
	"github.com/sheyn018/Employee-Dashboard/internal/disciplinary"
	"github.com/sheyn018/Employee-Dashboard/internal/employee"
	"github.com/sheyn018/Employee-Dashboard/internal/evaluation"
	"github.com/sheyn018/Employee-Dashboard/internal/grievance"
	"github.com/sheyn018/Employee-Dashboard/internal/health"
	"github.com/sheyn018/Employee-Dashboard/internal/leave"
	"github.com/sheyn018/Employee-Dashboard/internal/overtime"
	"github.com/sheyn018/Employee-Dashboard/internal/payslip"
	"github.com/sheyn018/Employee-Dashboard/internal/reports"
	"github.com/sheyn018/Employee-Dashboard/internal/salaryrequest"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"
	"github.com/sheyn018/Employee-Dashboard/internal/training"

	"github.com/gin-gonic/gin"
)

// PathIDKey is where the dispatcher stashes a trailing numeric path segment
// for handlers that accept the record id in the URL.
const PathIDKey = "path_id"

// availableEndpoints is the fixed list (and order) the 404 body advertises.
var availableEndpoints = []string{
	"employees", "new-employee", "salary-requests", "deleted-records",
	"payslips", "add-payslip", "leave-requests", "overtime-requests",
	"evaluations", "attendance", "budget", "training", "training-programs",
	"disciplinary", "disciplinary-actions", "grievances", "benefits",
	"reports", "analytics", "activerecords", "employeesalaryrequests",
	"deletedrecords", "payslip-history",
}

// aliases maps legacy table-name and hyphenated spellings onto the canonical
// endpoint name.
var aliases = map[string]string{
	"activerecords":          "employees",
	"employeesalaryrequests": "salary-requests",
	"deletedrecords":         "deleted-records",
	"payslip-history":        "payslips",
	"employee-evaluations":   "evaluations",
	"training-programs":      "training",
	"disciplinary-actions":   "disciplinary",
	"analytics":              "reports",
}

type Handlers struct {
	Health        *health.Handler
	Employee      *employee.Handler
	DeletedRecord *deletedrecord.Handler
	SalaryRequest *salaryrequest.Handler
	Payslip       *payslip.Handler
	Leave         *leave.Handler
	Overtime      *overtime.Handler
	Evaluation    *evaluation.Handler
	Attendance    *attendance.Handler
	Budget        *budget.Handler
	Training      *training.Handler
	Disciplinary  *disciplinary.Handler
	Grievance     *grievance.Handler
	Benefit       *benefit.Handler
	Reports       *reports.Handler
}

// route binds an endpoint's methods; notAllowed overrides the generic 405
// body for the endpoints that historically named the allowed method.
type route struct {
	methods    map[string]gin.HandlerFunc
	notAllowed string
}

type dispatcher struct {
	actions map[string]gin.HandlerFunc
	routes  map[string]route
	status  gin.HandlerFunc
}

// New assembles the engine: recovery, caller-supplied middleware, then the
// wildcard dispatcher.
func New(h Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware...)

	d := newDispatcher(h)
	engine.Any("/*path", d.dispatch)
	return engine
}

func newDispatcher(h Handlers) *dispatcher {
	d := &dispatcher{status: h.Health.Status}

	d.routes = map[string]route{
		"employees": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Employee.GetAll,
			http.MethodPost:   h.Employee.Create,
			http.MethodDelete: h.Employee.Delete,
		}},
		"employee-lookup": {
			methods:    map[string]gin.HandlerFunc{http.MethodGet: h.Employee.Lookup},
			notAllowed: "Only GET method allowed",
		},
		"new-employee": {
			methods:    map[string]gin.HandlerFunc{http.MethodPost: h.Employee.CreateWithGeneratedID},
			notAllowed: "Only POST method allowed",
		},
		"salary-requests": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.SalaryRequest.GetAll,
			http.MethodPost:   h.SalaryRequest.Create,
			http.MethodPut:    h.SalaryRequest.Update,
			http.MethodDelete: h.SalaryRequest.Delete,
		}},
		"deleted-records": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.DeletedRecord.GetAll,
			http.MethodPost:   h.DeletedRecord.Restore,
			http.MethodDelete: h.DeletedRecord.Purge,
		}},
		"payslips": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Payslip.GetAll,
			http.MethodPost:   h.Payslip.Generate,
			http.MethodPut:    h.Payslip.Update,
			http.MethodDelete: h.Payslip.Delete,
		}},
		"add-payslip": {
			methods:    map[string]gin.HandlerFunc{http.MethodPost: h.Payslip.Add},
			notAllowed: "Only POST method allowed",
		},
		"leave-requests": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Leave.GetAll,
			http.MethodPost:   h.Leave.Create,
			http.MethodPut:    h.Leave.Update,
			http.MethodDelete: h.Leave.Delete,
		}},
		"overtime-requests": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Overtime.GetAll,
			http.MethodPost:   h.Overtime.Create,
			http.MethodPut:    h.Overtime.Update,
			http.MethodDelete: h.Overtime.Delete,
		}},
		"evaluations": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Evaluation.GetAll,
			http.MethodPost:   h.Evaluation.Create,
			http.MethodPut:    h.Evaluation.Update,
			http.MethodDelete: h.Evaluation.Delete,
		}},
		"attendance": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Attendance.GetAll,
			http.MethodPost:   h.Attendance.Create,
			http.MethodDelete: h.Attendance.Delete,
		}},
		"budget": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Budget.GetAll,
			http.MethodPost:   h.Budget.Create,
			http.MethodPut:    h.Budget.Update,
			http.MethodDelete: h.Budget.Delete,
		}},
		"training": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Training.GetAll,
			http.MethodPost:   h.Training.Create,
			http.MethodPut:    h.Training.Update,
			http.MethodDelete: h.Training.Delete,
		}},
		"disciplinary": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Disciplinary.GetAll,
			http.MethodPost:   h.Disciplinary.Create,
			http.MethodPut:    h.Disciplinary.Update,
			http.MethodDelete: h.Disciplinary.Delete,
		}},
		"grievances": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Grievance.GetAll,
			http.MethodPost:   h.Grievance.Create,
			http.MethodPut:    h.Grievance.Update,
			http.MethodDelete: h.Grievance.Delete,
		}},
		"benefits": {methods: map[string]gin.HandlerFunc{
			http.MethodGet:    h.Benefit.GetAll,
			http.MethodPost:   h.Benefit.Create,
			http.MethodPut:    h.Benefit.Update,
			http.MethodDelete: h.Benefit.Delete,
		}},
		"reports": {
			methods:    map[string]gin.HandlerFunc{http.MethodGet: h.Reports.Generate},
			notAllowed: "Only GET method allowed for reports",
		},
	}

	d.actions = map[string]gin.HandlerFunc{
		"get_training":  h.Training.LegacyList,
		"add_training":  h.Training.LegacyAdd,
		"get_budget":    h.Budget.LegacyList,
		"add_budget":    h.Budget.LegacyAdd,
		"delete_budget": h.Budget.LegacyDelete,
		"add_benefit":   h.Benefit.LegacyAdd,
		"get_benefits":  func(c *gin.Context) { d.serve(c, "benefits") },
		"get_reports":   func(c *gin.Context) { d.serve(c, "reports") },
	}

	return d
}

func (d *dispatcher) dispatch(c *gin.Context) {
	endpoint, pathID := resolve(c.Param("path"))
	if pathID != 0 {
		c.Set(PathIDKey, pathID)
	}

	// Empty path without an action reports connection status. A recognized
	// action wins over path routing; an unrecognized one falls through to it,
	// so a bare root with a bogus action 404s rather than showing status.
	action := c.Query("action")
	if action != "" {
		if fn, ok := d.actions[action]; ok {
			fn(c)
			return
		}
	}
	if endpoint == "" && action == "" {
		d.status(c)
		return
	}

	d.serve(c, endpoint)
}

func (d *dispatcher) serve(c *gin.Context, endpoint string) {
	if canonical, ok := aliases[endpoint]; ok {
		endpoint = canonical
	}
	r, ok := d.routes[endpoint]
	if !ok {
		response.JSON(c, http.StatusNotFound, gin.H{
			"error":               "Endpoint not found",
			"available_endpoints": availableEndpoints,
		})
		return
	}
	fn, ok := r.methods[c.Request.Method]
	if !ok {
		msg := r.notAllowed
		if msg == "" {
			msg = "Method not allowed"
		}
		response.Error(c, http.StatusMethodNotAllowed, msg)
		return
	}
	fn(c)
}

// resolve extracts the endpoint name from the wildcard path. A trailing
// numeric segment is the record id when at least one more segment precedes
// it; api.php and the installation prefix around it resolve to the root.
func resolve(path string) (endpoint string, pathID int) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", 0
	}
	parts := strings.Split(trimmed, "/")
	endpoint = parts[len(parts)-1]

	if n, err := strconv.Atoi(endpoint); err == nil && len(parts) >= 2 {
		return parts[len(parts)-2], n
	}
	if endpoint == "api.php" || endpoint == "api" {
		return "", 0
	}
	return endpoint, 0
}
