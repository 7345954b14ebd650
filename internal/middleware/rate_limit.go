package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"study-copilot/pkg/response"
)

// RateLimit throttles per caller, keyed by user id when the gateway supplies
// one, otherwise by client IP. Zero per-minute config disables the limiter.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimit.PerMinute <= 0 {
			c.Next()
			return
		}

		key := c.GetHeader("X-User-ID")
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := mw.limiters.Get(key)
		if !ok {
			burst := mw.rateLimit.Burst
			if burst <= 0 {
				burst = 1
			}
			limiter = rate.NewLimiter(rate.Limit(float64(mw.rateLimit.PerMinute)/60.0), burst)
			mw.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
