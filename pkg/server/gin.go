package server

import (
	"Noted/config"
	"Noted/handler"
	"Noted/middleware"
	"Noted/pkg/log"
	"Noted/pkg/response"
	"Noted/pkg/session"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider struct {
	Config *config.Config
	Engine *gin.Engine
}

// ProbeProvider is the standalone session-debug server.
type ProbeProvider struct {
	Config *config.Config
	Engine *ProbeEngine
}

type ProbeEngine struct {
	*gin.Engine
}

func NewGinEngine(h *Handlers, conf *config.Config, sessions *session.Manager) *gin.Engine {
	r := newEngine(conf, sessions)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	h.Auth.RegisterRouter(api)
	h.Category.RegisterRouter(api)
	h.Note.RegisterRouter(api)

	r.NoRoute(staticFallback(conf.Server.PublicDir))
	return r
}

func NewProbeEngine(probe *handler.SessionProbe, conf *config.Config, sessions *session.Manager) *ProbeEngine {
	r := newEngine(conf, sessions)
	probe.RegisterRouter(r)
	return &ProbeEngine{Engine: r}
}

func newEngine(conf *config.Config, sessions *session.Manager) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(conf.Server.TrustedProxies); err != nil {
		log.L.Warn("invalid trusted proxies", zap.Strings("proxies", conf.Server.TrustedProxies), zap.Error(err))
	}

	r.Use(CORSMiddleware(conf))
	r.Use(middleware.GinZap(), middleware.PrometheusMiddleware())
	r.Use(response.ErrorMiddleware(conf.Debug()))
	r.Use(sessions.Middleware())
	return r
}

// CORSMiddleware allows credentialed requests. Outside production, or
// when no domain is configured, every origin is accepted; otherwise only
// the domain and its subdomains.
func CORSMiddleware(conf *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  allowOrigin(conf),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "X-Requested-With", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func allowOrigin(conf *config.Config) func(string) bool {
	domain := strings.ToLower(strings.TrimPrefix(conf.App.Domain, "."))
	return func(origin string) bool {
		if !conf.IsProduction() || domain == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(u.Hostname())
		return host == domain || strings.HasSuffix(host, "."+domain)
	}
}

// staticFallback serves files from dir and falls back to index.html so
// client side routes load the app. Unknown /api paths get a JSON 404.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			response.Fail(c, http.StatusNotFound, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Fail(c, http.StatusNotFound, "Not found")
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if serveFile(c, name) {
			return
		}
		if serveFile(c, filepath.Join(dir, "index.html")) {
			return
		}
		response.Fail(c, http.StatusNotFound, "Not found")
	}
}

// serveFile writes name when it is a regular file.
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, fi.Name(), fi.ModTime(), f)
	return true
}

func Run(ctx *cli.Context, app *AppProvider) error {
	log.L.Info("server starting",
		zap.Int("port", app.Config.Server.Http),
		zap.String("env", app.Config.App.Env),
	)
	return run(ctx.Context, app.Config.Server.Http, app.Engine)
}

func RunProbe(ctx *cli.Context, app *ProbeProvider) error {
	log.L.Info("session debug server starting",
		zap.Int("port", app.Config.Server.DebugPort),
		zap.String("env", app.Config.App.Env),
	)
	return run(ctx.Context, app.Config.Server.DebugPort, app.Engine)
}

func run(ctx context.Context, port int, h http.Handler) error {
	c := make(chan os.Signal, 1)
	// 终止的信号 服务要停止了
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(c)

	eg, groupCtx := errgroup.WithContext(ctx)
	serv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动 http 服务
	eg.Go(func() error {
		err := serv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			log.L.Info("server stopping", zap.Int("port", port))

			// 等待中断信号以优雅地关闭服务器
			timeCtx, timeCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer timeCancel()

			if err := serv.Shutdown(timeCtx); err != nil {
				log.L.Info("server stopping", zap.Int("port", port), zap.Error(err))
			}
		}()

		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case <-c:
			return nil
		}
	})

	err := eg.Wait()
	log.L.Info("server stopped", zap.Int("port", port))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
