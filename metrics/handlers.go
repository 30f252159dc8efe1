package metrics

import (
	"eventdesk/event"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const mutationHandlerIdentifier = "metrics-mutations"

// MutationEventHandler counts every change record.
func MutationEventHandler(e *event.EventRecord) *event.EventHandleResult {
	MutationsTotal.WithLabelValues(e.SourceType, string(e.EventCategory)).Inc()
	return &event.EventHandleResult{Success: true, Message: "counted", HandlerIdentifier: mutationHandlerIdentifier}
}

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RegisterMetricsRestApis(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
