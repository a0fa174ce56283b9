package middleware

import (
	"Noted/pkg/context"
	"Noted/pkg/session"
	"Noted/types"
	stdctx "context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore map[string]*types.Session

func (m memStore) Get(_ stdctx.Context, sid string) (*types.Session, error) {
	if s, ok := m[sid]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, assert.AnError
}

func (m memStore) Set(_ stdctx.Context, s *types.Session, _ time.Duration) error {
	cp := *s
	m[s.ID] = &cp
	return nil
}

func (m memStore) Del(_ stdctx.Context, sid string) error {
	delete(m, sid)
	return nil
}

func newEngine() *gin.Engine {
	m := session.New(memStore{}, session.Options{
		CookieName: "noted.sid",
		Secret:     []byte("test"),
		TTL:        time.Hour,
		SameSite:   http.SameSiteLaxMode,
	})
	r := gin.New()
	r.Use(GinZap(), PrometheusMiddleware(), m.Middleware())
	r.GET("/login", func(c *gin.Context) {
		s := session.Default(c)
		s.UserID = 5
		s.Username = "admin"
		_ = s.Save()
		c.Status(http.StatusNoContent)
	})
	r.GET("/private", Auth(), func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": uid, "name": context.GetUsername(c)})
	})
	return r
}

func TestAuth_RejectsAnonymous(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Authentication required"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestAuth_ExposesUser(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":5,"name":"admin"}`, w.Body.String())
}

func TestPrometheusMiddleware_CountsRequests(t *testing.T) {
	r := newEngine()
	anonymous := httpRequestsTotal.WithLabelValues(http.MethodGet, "/private", "401", "anonymous")
	rejected := authRejectionsTotal.WithLabelValues("/private")
	before, rejectedBefore := testutil.ToFloat64(anonymous), testutil.ToFloat64(rejected)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(anonymous))
	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(rejected))
}

func TestPrometheusMiddleware_LabelsLoggedInRequests(t *testing.T) {
	r := newEngine()
	login := httpRequestsTotal.WithLabelValues(http.MethodGet, "/login", "204", "user")
	private := httpRequestsTotal.WithLabelValues(http.MethodGet, "/private", "200", "user")
	loginBefore, privateBefore := testutil.ToFloat64(login), testutil.ToFloat64(private)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, loginBefore+1, testutil.ToFloat64(login))
	assert.Equal(t, privateBefore+1, testutil.ToFloat64(private))
}
