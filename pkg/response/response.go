package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// ErrorEnvelope wraps a typed error for JSON rendering.
type ErrorEnvelope struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response. The payload is written as-is: records and
// record lists are the body, not nested under a data key, so client form
// tooling can consume them directly.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorEnvelope{Error: appErr})
}
