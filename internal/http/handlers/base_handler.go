// README: Shared handler helpers and the success/error response envelope.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// failureResponse is the envelope for any aborted request: no partial
// itinerary or suggestions, just the error message.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// writeFailure reports an abort. Orchestration failures answer 200 with
// success:false, matching the API contract; only unparseable requests get a
// 4xx status.
func writeFailure(c *gin.Context, status int, msg string) {
	writeJSON(c, status, failureResponse{Success: false, Error: msg})
}
