package middleware

import (
	"time"

	"itodo/pkg/log"
)

const (
	// SessionHeader lets API clients pin a session without cookies.
	SessionHeader = "X-Session-ID"

	defaultCookieName = "itodo_session"
)

// Config configures the middleware set.
type Config struct {
	CookieName      string
	CookieMaxAge    time.Duration
	SecureCookie    bool
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
