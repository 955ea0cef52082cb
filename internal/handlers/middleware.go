package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDCtxKey    = "userId"
	requestIDCtxKey = "requestId"
	requestIDHeader = "X-Request-Id"
)

// requireSession is the access gate: any route registered behind it needs a
// signed-in session, otherwise the request is rejected before reaching its
// handler.
func (h *Handler) requireSession(c *gin.Context) {
	userID, ok := h.sess.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errUnauthorized,
		})
		return
	}

	// store in Gin context for handlers
	c.Set(userIDCtxKey, userID)
	c.Next()
}

// requestIDMiddleware tags every request with a correlation id, echoed in the
// response header and attached to handler logs.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDCtxKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
