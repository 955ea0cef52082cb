package handlers

import (
	"github.com/gin-gonic/gin"
)

// Stable error bodies promised by the API contract.
const (
	errUnauthorized   = "Unauthorized"
	errInvalidCreds   = "Invalid username or password"
	errUsernameTaken  = "Username must be unique"
	errInvalidRecipe  = "Invalid data or duplicate entry"
	errInvalidBody    = "Invalid request body"
	errGenericFailure = "Unable to process request"
)

// logAndJSON logs the underlying error with the request id and responds with
// the given status and body. Internal detail never reaches the client.
func (h *Handler) logAndJSON(c *gin.Context, httpCode int, body gin.H, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDCtxKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, body)
}

// errorsBody is the {"errors": ...} shape used by the write endpoints.
func errorsBody(msg string) gin.H { return gin.H{"errors": msg} }

// errorBody is the {"error": ...} shape used by auth rejections.
func errorBody(msg string) gin.H { return gin.H{"error": msg} }
