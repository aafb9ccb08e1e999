package drafts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie has no max age, so the browser drops it when the session ends.
const SessionCookie = "portfolio_session"

const sessionKey = "session_id"

// Session makes sure every visitor carries a session id cookie and exposes it
// through SessionID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session, or "" outside it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
