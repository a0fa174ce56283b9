package middleware

import (
	"Noted/pkg/context"
	"Noted/pkg/response"
	"Noted/pkg/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth lets the request through only when the session belongs to a
// logged in user.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Default(c)
		if sess == nil || !sess.IsAuthenticated() {
			authRejectionsTotal.WithLabelValues(routePath(c)).Inc()
			response.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		c.Set(context.CtxUserID, sess.UserID)
		c.Set(context.CtxUsername, sess.Username)

		c.Next()
	}
}
