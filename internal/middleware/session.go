package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"itodo/internal/model"
	"itodo/pkg/log"
)

// Session resolves the caller's session from the X-Session-ID header or the
// session cookie, issuing a new ID when neither holds a valid UUID. The
// scope is stored in the request context and echoed back in the cookie.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionIDFrom(c, m.cfg.CookieName)
		if id == "" {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cfg.CookieName, id, int(m.cfg.CookieMaxAge.Seconds()), "/", "", m.cfg.SecureCookie, true)
		c.Header(SessionHeader, id)

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{SessionID: id})
		ctx = log.WithFields(ctx, "session_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionIDFrom(c *gin.Context, cookieName string) string {
	if id := c.GetHeader(SessionHeader); validSessionID(id) {
		return id
	}
	if id, err := c.Cookie(cookieName); err == nil && validSessionID(id) {
		return id
	}
	return ""
}

func validSessionID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ScopeFromGin returns the scope stored by Session.
func ScopeFromGin(c *gin.Context) (model.Scope, bool) {
	return model.GetScopeFromContext(c.Request.Context())
}
