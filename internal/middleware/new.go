package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"study-outline-tracker/pkg/log"
)

// limiterCacheSize bounds how many client IPs hold a live limiter.
const limiterCacheSize = 1024

// Config carries the transport policy knobs for the middleware chain.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	config   Config
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg Config) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)
	return Middleware{
		l:        l,
		config:   cfg,
		limiters: limiters,
	}
}
