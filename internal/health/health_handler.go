package health

import (
	"net/http"
	"time"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo     Repository
	database string
	server   string
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(repo Repository, database, server string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{repo: repo, database: database, server: server, logger: l, now: time.Now}
}

// Status serves the bare root path: connection confirmation plus database and
// table introspection, including an exists/missing verdict per required table.
func (h *Handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	databases, err := h.repo.Databases(ctx)
	if err != nil {
		h.logger.Error("list databases failed", zap.Error(err))
		response.JSON(c, http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database connection failed",
			"details": err.Error(),
		})
		return
	}

	tables, err := h.repo.Tables(ctx)
	if err != nil {
		h.logger.Error("list tables failed", zap.Error(err))
		response.JSON(c, http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database connection failed",
			"details": err.Error(),
		})
		return
	}

	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t] = true
	}
	tableStatus := make(map[string]string, len(RequiredTables))
	for _, t := range RequiredTables {
		if present[t] {
			tableStatus[t] = "exists"
		} else {
			tableStatus[t] = "missing"
		}
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":                   "success",
		"message":                  "Database connection successful!",
		"current_database":         h.database,
		"server":                   h.server,
		"timestamp":                h.now().Format("2006-01-02 15:04:05"),
		"all_databases":            databases,
		"all_tables_in_current_db": tables,
		"required_tables_status":   tableStatus,
	})
}
