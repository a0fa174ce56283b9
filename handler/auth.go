package handler

import (
	"Noted/config"
	"Noted/pkg/context"
	"Noted/pkg/hashid"
	"Noted/pkg/log"
	"Noted/pkg/response"
	"Noted/pkg/session"
	"Noted/service"
	"Noted/types"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	UserService service.IUserService
	Sessions    *session.Manager
	Ids         *hashid.Codec
	Config      *config.Config
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", context.Wrap(a.Login))
	g.GET("/logout", context.Wrap(a.Logout))
	g.GET("/check", context.Wrap(a.Check))
	g.GET("/debug", context.Wrap(a.Debug))
}

// Login 用户名密码登录，成功后写入会话
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil || req.Username == "" || req.Password == "" {
		return response.BadRequest("Username and password are required")
	}

	user, err := a.UserService.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return response.Unauthorized("User not found")
	case errors.Is(err, service.ErrInvalidPassword):
		return response.Unauthorized("Invalid password")
	case err != nil:
		return failure(err, "Server error")
	}

	sess := session.Default(c)
	sess.UserID = user.ID
	sess.Username = user.Username
	if err := sess.Save(); err != nil {
		return failure(err, "Server error")
	}

	log.L.Info("user logged in", zap.String("username", user.Username))
	response.Message(c, "Login successful")
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	if err := session.Default(c).Destroy(); err != nil {
		log.L.Error("destroy session", zap.Error(err))
		return response.Internal("Error logging out")
	}
	response.Message(c, "Logged out successfully")
	return nil
}

func (a *Auth) Check(c *gin.Context) error {
	sess := session.Default(c)
	if !sess.IsAuthenticated() {
		response.Success(c, gin.H{"authenticated": false})
		return nil
	}
	response.Success(c, gin.H{
		"authenticated": true,
		"username":      sess.Username,
	})
	return nil
}

// Debug reports session, proxy header and environment state. The cookie
// header itself is never echoed.
func (a *Auth) Debug(c *gin.Context) error {
	sess := session.Default(c)

	info := types.SessionDebug{
		Exists: !sess.IsNew(),
		Cookie: a.Sessions.CookieInfo(),
	}
	if sess.IsAuthenticated() {
		uid := a.Ids.Encode(sess.UserID)
		info.UserID = &uid
		info.Username = &sess.Username
	}

	cookie := "None"
	if c.GetHeader("Cookie") != "" {
		cookie = "Exists (hidden for security)"
	}
	headers := debugHeaders(c)
	headers["cookie"] = cookie

	response.Success(c, gin.H{
		"session": info,
		"headers": headers,
		"environment": types.EnvironmentDebug{
			IsProduction: a.Config.IsProduction(),
			Env:          a.Config.App.Env,
			Port:         a.Config.Server.Http,
			Domain:       a.Config.App.Domain,
		},
	})
	return nil
}

var debugHeaderNames = []string{
	"x-forwarded-for",
	"x-forwarded-host",
	"x-forwarded-proto",
	"host",
	"user-agent",
	"referer",
	"origin",
}

func debugHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string, len(debugHeaderNames)+1)
	for _, name := range debugHeaderNames {
		v := c.GetHeader(name)
		if name == "host" {
			v = c.Request.Host
		}
		if v != "" {
			headers[name] = v
		}
	}
	return headers
}
