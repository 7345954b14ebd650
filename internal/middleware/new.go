package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"study-copilot/config"
	"study-copilot/pkg/log"
)

// limiterCacheSize bounds how many per-caller limiters stay resident; idle
// callers age out and start a fresh window on return.
const (
	limiterCacheSize = 4096
	limiterTTL       = 10 * time.Minute
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiters  *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
	}
}
