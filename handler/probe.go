package handler

import (
	"Noted/config"
	"Noted/pkg/context"
	"Noted/pkg/response"
	"Noted/pkg/session"
	"Noted/types"

	"github.com/gin-gonic/gin"
)

// SessionProbe backs the session-debug server. Every visit is counted
// and saved, so each visitor gets a stored session and a cookie.
type SessionProbe struct {
	Sessions *session.Manager
	Config   *config.Config
}

func (p *SessionProbe) RegisterRouter(r gin.IRouter) {
	r.GET("/", context.Wrap(p.Visit))
}

func (p *SessionProbe) Visit(c *gin.Context) error {
	sess := session.Default(c)
	visits := sess.Incr("visits")
	if err := sess.Save(); err != nil {
		return failure(err, "Error saving session")
	}

	response.Success(c, gin.H{
		"message": "Session test page",
		"session": types.SessionDebug{
			Exists: true,
			ID:     sess.ID,
			Visits: visits,
			Cookie: p.Sessions.CookieInfo(),
		},
		"headers": debugHeaders(c),
		"environment": types.EnvironmentDebug{
			IsProduction: p.Config.IsProduction(),
			Env:          p.Config.App.Env,
			Port:         p.Config.Server.DebugPort,
			Domain:       p.Config.App.Domain,
		},
	})
	return nil
}
