package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"study-outline-tracker/pkg/response"
)

// RateLimit throttles requests per client IP. Disabled when the
// configured per-minute limit is zero or negative.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.config.RateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		limiter := mw.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (mw Middleware) limiterFor(ip string) *rate.Limiter {
	if limiter, ok := mw.limiters.Get(ip); ok {
		return limiter
	}

	perMin := mw.config.RateLimitPerMin
	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
	mw.limiters.Add(ip, limiter)
	return limiter
}
