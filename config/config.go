package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
// Built once at process entry and shared read-only afterwards.
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Database *Database `json:"database" yaml:"database"`
	Session  *Session  `json:"session" yaml:"session"`
	Server   *Server   `json:"server" yaml:"server"`
	Log      *Log      `json:"log" yaml:"log"`
	Install  *Install  `json:"install" yaml:"install"`
	Reorder  *Reorder  `json:"reorder" yaml:"reorder"`
}

type Server struct {
	Http           int      `json:"http" yaml:"http"`
	PublicDir      string   `json:"public_dir" yaml:"public_dir"`
	TrustedProxies []string `json:"trusted_proxies" yaml:"trusted_proxies"`
	DebugPort      int      `json:"debug_port" yaml:"debug_port"`
}

// Reorder controls how bulk order updates are applied.
type Reorder struct {
	// Atomic wraps the whole batch in one transaction instead of
	// issuing independent concurrent updates.
	Atomic bool `json:"atomic" yaml:"atomic"`
}

// New reads the yaml file (a missing file is not an error), applies
// environment overrides and fills defaults.
func New(filename string) *Config {
	var conf Config

	content, err := os.ReadFile(filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, &conf); err != nil {
			panic(fmt.Sprintf("parse %s: %v", filename, err))
		}
	}

	conf.overrideFromEnv(os.Getenv)
	conf.setDefaults()

	return &conf
}

// Default returns a config holding only defaults, ignoring files and
// the environment.
func Default() *Config {
	var conf Config
	conf.setDefaults()
	return &conf
}

func (c *Config) overrideFromEnv(getenv func(string) string) {
	c.ensureSections()

	if val := getenv("APP_ENV"); val != "" {
		c.App.Env = val
	}
	if val := getenv("DOMAIN"); val != "" {
		c.App.Domain = val
	}
	if val := getenv("DATABASE_DRIVER"); val != "" {
		c.Database.Driver = val
	}
	if val := getenv("DATABASE_DSN"); val != "" {
		c.Database.DSN = val
	}
	if val := getenv("REDIS_ADDR"); val != "" {
		c.Redis.Address = val
	}
	if val := getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}
	if val := getenv("SESSION_SECRET"); val != "" {
		c.Session.Secret = val
	}
	if val := getenv("PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Server.Http = port
		}
	}
	if val := getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
}

func (c *Config) ensureSections() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Session == nil {
		c.Session = &Session{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Install == nil {
		c.Install = &Install{}
	}
	if c.Reorder == nil {
		c.Reorder = &Reorder{}
	}
}

func (c *Config) setDefaults() {
	c.ensureSections()

	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.IDSalt == "" {
		c.App.IDSalt = "noted"
	}
	if c.Server.Http == 0 {
		c.Server.Http = 3000
	}
	if c.Server.DebugPort == 0 {
		c.Server.DebugPort = 3333
	}
	if c.Server.PublicDir == "" {
		c.Server.PublicDir = "public"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "127.0.0.1:6379"
	}
	c.Session.setDefaults()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Install.Username == "" {
		c.Install.Username = "admin"
	}
	if c.Install.Password == "" {
		c.Install.Password = "admin123"
	}
	if c.Install.Category == "" {
		c.Install.Category = "Note"
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug || !c.IsProduction()
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
