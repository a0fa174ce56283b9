package session

import (
	"Noted/config"
	"Noted/dao/cache"
	"Noted/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T, conf *config.Config) (*gin.Engine, *miniredis.Miniredis, *Manager) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	m := NewManager(conf, cache.NewSessionStorage(rds))
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/login", func(c *gin.Context) {
		s := Default(c)
		s.UserID = 9
		s.Username = "admin"
		if err := s.Save(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/whoami", func(c *gin.Context) {
		s := Default(c)
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID, "new": s.IsNew()})
	})
	r.GET("/logout", func(c *gin.Context) {
		if err := Default(c).Destroy(); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "bye")
	})
	return r, mr, m
}

func do(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "noted.sid" {
			return ck
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func TestManager_UnmodifiedSessionIsNotStored(t *testing.T) {
	r, mr, _ := newTestEngine(t, config.Default())

	w := do(r, "/whoami")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())
	assert.Empty(t, mr.Keys())
	assert.JSONEq(t, `{"user_id":0,"new":true}`, w.Body.String())
}

func TestManager_SaveAndReload(t *testing.T) {
	r, mr, _ := newTestEngine(t, config.Default())

	w := do(r, "/login")
	require.Equal(t, http.StatusOK, w.Code)
	ck := sessionCookie(t, w)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), ck.MaxAge)
	require.Len(t, mr.Keys(), 1)
	assert.Equal(t, 24*time.Hour, mr.TTL(mr.Keys()[0]))

	w = do(r, "/whoami", ck)
	assert.JSONEq(t, `{"user_id":9,"new":false}`, w.Body.String())
}

func TestManager_ProductionCookie(t *testing.T) {
	conf := config.Default()
	conf.App.Env = "production"
	r, _, m := newTestEngine(t, conf)

	ck := sessionCookie(t, do(r, "/login"))
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)

	info := m.CookieInfo()
	assert.True(t, info.Secure)
	assert.Equal(t, "none", info.SameSite)
	assert.EqualValues(t, 24*60*60*1000, info.MaxAge)
}

func TestManager_Destroy(t *testing.T) {
	r, mr, _ := newTestEngine(t, config.Default())

	ck := sessionCookie(t, do(r, "/login"))
	w := do(r, "/logout", ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mr.Keys())
	assert.Less(t, sessionCookie(t, w).MaxAge, 0)

	w = do(r, "/whoami", ck)
	assert.JSONEq(t, `{"user_id":0,"new":true}`, w.Body.String())
}

func TestManager_ForgedCookie(t *testing.T) {
	r, _, _ := newTestEngine(t, config.Default())
	_ = sessionCookie(t, do(r, "/login"))

	forged, err := jwt.SignSessionID([]byte("other-secret"), "whatever", time.Hour)
	require.NoError(t, err)

	w := do(r, "/whoami", &http.Cookie{Name: "noted.sid", Value: forged})
	assert.JSONEq(t, `{"user_id":0,"new":true}`, w.Body.String())

	w = do(r, "/whoami", &http.Cookie{Name: "noted.sid", Value: "garbage"})
	assert.JSONEq(t, `{"user_id":0,"new":true}`, w.Body.String())
}

func TestManager_ExpiredRecord(t *testing.T) {
	r, mr, _ := newTestEngine(t, config.Default())

	ck := sessionCookie(t, do(r, "/login"))
	mr.FastForward(25 * time.Hour)

	w := do(r, "/whoami", ck)
	assert.JSONEq(t, `{"user_id":0,"new":true}`, w.Body.String())
}

func TestDefault_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, Default(c))
}
