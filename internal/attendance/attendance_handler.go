package attendance

import (
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/randomid"
	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo   Repository
	ids    *randomid.Generator
	logger *zap.Logger
}

func NewHandler(repo Repository, ids *randomid.Generator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{repo: repo, ids: ids, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := ListFilter{
		Date:       c.Query("date"),
		EmployeeID: c.Query("employee_id"),
	}
	records, err := h.repo.FindAll(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list attendance records failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch attendance records", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, records)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EmployeeName == nil || req.EmployeeID == nil || req.AttendanceDate == nil ||
		req.AttendanceType == nil || req.AttendanceTime == nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields: employee_name, employee_id, attendance_date, attendance_type, attendance_time")
		return
	}

	if *req.AttendanceType != "check_in" && *req.AttendanceType != "check_out" {
		response.Error(c, http.StatusBadRequest, "Invalid attendance type. Must be: check_in or check_out")
		return
	}
	if !randomid.InRange(*req.EmployeeID) {
		response.Error(c, http.StatusBadRequest, "Employee ID must be a 5-digit number")
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.EmployeeExists(ctx, *req.EmployeeID)
	if err != nil {
		h.logger.Error("employee check failed", zap.Int("employee_id", *req.EmployeeID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to record attendance", err.Error())
		return
	}
	if !exists {
		response.Error(c, http.StatusNotFound, "Employee ID not found in active records")
		return
	}

	id, err := h.ids.Next(ctx, "attendance_records")
	if err != nil {
		h.logger.Error("generate attendance id failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to record attendance", err.Error())
		return
	}

	a := &AttendanceRecord{
		ID:             id,
		EmployeeID:     *req.EmployeeID,
		EmployeeName:   *req.EmployeeName,
		AttendanceDate: *req.AttendanceDate,
		AttendanceTime: *req.AttendanceTime,
		AttendanceType: *req.AttendanceType,
		Notes:          req.Notes,
	}
	if err := h.repo.Create(ctx, a); err != nil {
		h.logger.Error("record attendance failed", zap.Int("id", id), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to record attendance", err.Error())
		return
	}

	h.logger.Info("attendance recorded", zap.Int("id", id), zap.Int("employee_id", a.EmployeeID), zap.String("type", a.AttendanceType))
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"attendance": gin.H{
			"id":              id,
			"employee_name":   a.EmployeeName,
			"employee_id":     a.EmployeeID,
			"attendance_date": a.AttendanceDate,
			"attendance_time": a.AttendanceTime,
			"attendance_type": a.AttendanceType,
			"notes":           a.Notes,
		},
	})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		response.Error(c, http.StatusBadRequest, "Attendance record ID is required")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), *req.ID); err != nil {
		h.logger.Error("delete attendance record failed", zap.Int("id", *req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to delete attendance record", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
