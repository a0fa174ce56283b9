package session

import (
	"Noted/config"
	"Noted/dao/cache"
	"Noted/pkg/jwt"
	"Noted/pkg/log"
	"Noted/types"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const contextKey = "noted.session"

// Store persists session records by id.
type Store interface {
	Get(ctx context.Context, sid string) (*types.Session, error)
	Set(ctx context.Context, sess *types.Session, ttl time.Duration) error
	Del(ctx context.Context, sid string) error
}

type Options struct {
	CookieName string
	Secret     []byte
	TTL        time.Duration
	Secure     bool
	SameSite   http.SameSite
}

type Manager struct {
	store Store
	opts  Options
}

// NewManager derives cookie attributes from the environment: production
// cookies are Secure with SameSite=None, everything else uses Lax.
func NewManager(conf *config.Config, store *cache.SessionStorage) *Manager {
	opts := Options{
		CookieName: conf.Session.CookieName,
		Secret:     []byte(conf.Session.Secret),
		TTL:        conf.Session.TTL,
		SameSite:   http.SameSiteLaxMode,
	}
	if conf.IsProduction() {
		opts.Secure = true
		opts.SameSite = http.SameSiteNoneMode
	}
	return New(store, opts)
}

func New(store Store, opts Options) *Manager {
	return &Manager{store: store, opts: opts}
}

// Session is the per request handle. Changes only reach the store
// through Save.
type Session struct {
	*types.Session
	m     *Manager
	c     *gin.Context
	isNew bool
}

// Middleware attaches a session handle to every request. A missing,
// forged or expired cookie yields a fresh, unsaved session.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, m.load(c))
		c.Next()
	}
}

func (m *Manager) load(c *gin.Context) *Session {
	if token, err := c.Cookie(m.opts.CookieName); err == nil && token != "" {
		if sid, err := jwt.ParseSessionID(m.opts.Secret, token); err == nil {
			rec, err := m.store.Get(c.Request.Context(), sid)
			if err == nil {
				return &Session{Session: rec, m: m, c: c}
			}
			if !errors.Is(err, cache.ErrSessionNotFound) {
				log.L.Warn("load session", zap.String("sid", sid), zap.Error(err))
			}
		}
	}

	return &Session{
		Session: &types.Session{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
		},
		m:     m,
		c:     c,
		isNew: true,
	}
}

// Default returns the handle attached by Middleware, or nil.
func Default(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

func (s *Session) IsNew() bool {
	return s.isNew
}

// Save writes the record with a fresh TTL and (re)issues the cookie.
func (s *Session) Save() error {
	if err := s.m.store.Set(s.c.Request.Context(), s.Session, s.m.opts.TTL); err != nil {
		return err
	}
	token, err := jwt.SignSessionID(s.m.opts.Secret, s.ID, s.m.opts.TTL)
	if err != nil {
		return err
	}
	s.m.setCookie(s.c, token, int(s.m.opts.TTL.Seconds()))
	s.isNew = false
	return nil
}

// Destroy removes the record and expires the cookie.
func (s *Session) Destroy() error {
	if err := s.m.store.Del(s.c.Request.Context(), s.ID); err != nil {
		return err
	}
	s.m.setCookie(s.c, "", -1)
	s.Session = &types.Session{ID: uuid.NewString(), CreatedAt: time.Now()}
	s.isNew = true
	return nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(m.opts.SameSite)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

// CookieInfo reports the attributes cookies are issued with. MaxAge is
// in milliseconds.
func (m *Manager) CookieInfo() types.CookieInfo {
	return types.CookieInfo{
		MaxAge:   m.opts.TTL.Milliseconds(),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: sameSiteName(m.opts.SameSite),
	}
}

func sameSiteName(mode http.SameSite) string {
	switch mode {
	case http.SameSiteNoneMode:
		return "none"
	case http.SameSiteStrictMode:
		return "strict"
	case http.SameSiteLaxMode:
		return "lax"
	default:
		return ""
	}
}
