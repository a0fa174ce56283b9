package config

import "time"

type Session struct {
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookie_name" yaml:"cookie_name"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

func (s *Session) setDefaults() {
	if s.Secret == "" {
		s.Secret = "note_app_secret"
	}
	if s.CookieName == "" {
		s.CookieName = "noted.sid"
	}
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
}
