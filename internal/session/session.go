// Package session wraps gin-contrib/sessions behind a small manager so
// handlers read and write the signed-in user without touching ambient state,
// and tests can swap the implementation.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CookieName names the session cookie presented by clients.
const CookieName = "recipebox_session"

const userIDKey = "user_id"

// Manager is the server-side association between a client's session and a
// user id.
type Manager interface {
	// UserID reports the signed-in user for this request, if any.
	UserID(c *gin.Context) (int, bool)
	// SignIn associates the current session with userID, overwriting any
	// previous association.
	SignIn(c *gin.Context, userID int) error
	// SignOut clears the association. Clearing an absent session is not an
	// error.
	SignOut(c *gin.Context) error
}

// CookieManager stores the user id in the request's cookie-backed session.
// The backing store (cookie, memstore, redis) is whatever sessions.Sessions
// middleware was mounted with.
type CookieManager struct{}

func NewCookieManager() *CookieManager {
	return &CookieManager{}
}

var _ Manager = (*CookieManager)(nil)

func (m *CookieManager) UserID(c *gin.Context) (int, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get(userIDKey).(int)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func (m *CookieManager) SignIn(c *gin.Context, userID int) error {
	sess := sessions.Default(c)
	sess.Set(userIDKey, userID)
	return sess.Save()
}

func (m *CookieManager) SignOut(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
