// Package response writes the wire shapes the legacy dashboard clients
// already depend on. The envelopes are deliberately inconsistent across
// resources (bare arrays, {success,id,...}, {error}, {success:false,message})
// and must stay that way; do not unify them without re-versioning the API.
package response

import (
	"errors"

	"github.com/sheyn018/Employee-Dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// JSON writes an arbitrary payload. Every handler path goes through exactly
// one call into this package; nothing may write to the ResponseWriter after.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ErrorDetails writes {"error": message, "details": details}. Details carry
// the raw driver error text; acceptable for an internal tool only.
func ErrorDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{"error": message, "details": details})
}

// Fail writes {"success": false, "message": message} — the envelope the
// training/benefit family of endpoints uses instead of the "error" key.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// FailDetails is Fail with the driver error text attached.
func FailDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{"success": false, "message": message, "details": details})
}

// FailError writes {"success": false, "error": message} — used by the legacy
// add_budget action family.
func FailError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// FailErrorDetails is FailError with the driver error text attached.
func FailErrorDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{"success": false, "error": message, "details": details})
}

// AppError renders a classified error in the plain error envelope, carrying
// the wrapped cause as details when present. An unclassified error falls
// back to a generic 500 so driver internals only leak where a handler
// wrapped them deliberately.
func AppError(c *gin.Context, err error) {
	var e *apperror.AppError
	if errors.As(err, &e) && e.Err != nil {
		ErrorDetails(c, e.HTTPStatus, e.Message, e.Err.Error())
		return
	}
	Error(c, apperror.Status(err), apperror.ClientMessage(err))
}

// List writes {"success": true, "data": payload}.
func List(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"success": true, "data": payload})
}
