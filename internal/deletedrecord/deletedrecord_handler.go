package deletedrecord

import (
	"errors"
	"net/http"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("deletedrecord.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deletedrecord.handler")
	}
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	records, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list deleted records failed", zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to fetch deleted records", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Restore moves a deleted record back into activerecords.
func (h *Handler) Restore(c *gin.Context) {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	ctx := c.Request.Context()
	rec, err := h.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Deleted record not found")
			return
		}
		h.logger.Error("fetch deleted record failed", zap.Int("id", req.ID), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to restore record")
		return
	}

	if err := h.repo.Restore(ctx, rec); err != nil {
		h.logger.Error("restore record failed", zap.Int("id", rec.ID), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to restore record")
		return
	}

	h.logger.Info("deleted record restored", zap.Int("id", rec.ID), zap.String("name", rec.Name))
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// Purge removes a deleted record permanently.
func (h *Handler) Purge(c *gin.Context) {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.DeleteByID(c.Request.Context(), req.ID); err != nil {
		h.logger.Error("purge deleted record failed", zap.Int("id", req.ID), zap.Error(err))
		response.ErrorDetails(c, http.StatusInternalServerError, "Failed to permanently delete record", err.Error())
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
