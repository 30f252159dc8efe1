package tracing

import (
	"eventdesk/session"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// TracingIngress starts a server span per request, continuing the caller's
// trace when one is propagated in the headers. Spans are named after the
// matched route so that ids in paths do not explode the operation names.
func TracingIngress() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tracer := opentracing.GlobalTracer()
		spanCtx, _ := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(ctx.Request.Header))
		serverSpan := tracer.StartSpan(operationName(ctx), ext.RPCServerOption(spanCtx))
		defer serverSpan.Finish()

		ext.HTTPMethod.Set(serverSpan, ctx.Request.Method)
		ext.HTTPUrl.Set(serverSpan, ctx.Request.URL.String())
		ctx.Request = ctx.Request.WithContext(opentracing.ContextWithSpan(ctx.Request.Context(), serverSpan))

		ctx.Next()

		status := ctx.Writer.Status()
		ext.HTTPStatusCode.Set(serverSpan, uint16(status))
		if status >= 500 {
			ext.Error.Set(serverSpan, true)
		}
		if s := session.ExtractSessionFromGinContext(ctx); s.Identity.ID != 0 {
			serverSpan.SetTag("user.id", s.Identity.ID.String())
		}
	}
}

func operationName(ctx *gin.Context) string {
	path := ctx.FullPath()
	if path == "" {
		path = ctx.Request.URL.Path
	}
	return ctx.Request.Method + " " + path
}
