package sessions

import (
	"eventdesk/bizerror"
	"eventdesk/metrics"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// LoginRateLimit throttles requests per client ip. Idle limiters are evicted
// after ten minutes.
func LoginRateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiters := cache.New(10*time.Minute, time.Minute)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rate.NewLimiter(limit, burst)
		// Add fails when another request registered this ip first
		if err := limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
			if v, found := limiters.Get(ip); found {
				limiter = v.(*rate.Limiter)
				limiters.SetDefault(ip, limiter)
			}
		}
		if !limiter.Allow() {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			panic(bizerror.ErrTooManyRequests)
		}
		c.Next()
	}
}
