package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondRejected carries a machine-readable reason code so the caller can
// explain why a slot that looked available failed on submission.
func RespondRejected(c *gin.Context, code int, message string, reason string) {
	c.JSON(code, StandardApiResponse{
		Status:     "error",
		StatusCode: code,
		Message:    message,
		Reason:     reason,
	})
}
