package types

import "time"

// Session is the server side record behind the session cookie.
type Session struct {
	ID        string           `json:"-"`
	UserID    uint64           `json:"user_id,omitempty"`
	Username  string           `json:"username,omitempty"`
	Counters  map[string]int64 `json:"counters,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != 0
}

// Incr bumps a named counter and returns its new value.
func (s *Session) Incr(name string) int64 {
	if s.Counters == nil {
		s.Counters = make(map[string]int64)
	}
	s.Counters[name]++
	return s.Counters[name]
}

// CookieInfo describes the attributes the session cookie is written with.
type CookieInfo struct {
	MaxAge   int64  `json:"maxAge"`
	HttpOnly bool   `json:"httpOnly"`
	Secure   bool   `json:"secure"`
	SameSite string `json:"sameSite"`
}

type SessionDebug struct {
	Exists   bool       `json:"exists"`
	ID       string     `json:"id,omitempty"`
	UserID   *string    `json:"userId"`
	Username *string    `json:"username"`
	Visits   int64      `json:"visits,omitempty"`
	Cookie   CookieInfo `json:"cookie"`
}

type EnvironmentDebug struct {
	IsProduction bool   `json:"isProduction"`
	Env          string `json:"env"`
	Port         int    `json:"port"`
	Domain       string `json:"domain"`
}
