package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/rs/zerolog/log"
)

// ZeroLogMiddleware logs gin requests via zerolog
func ZeroLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		path := c.Request.URL.Path
		if path == "/liveness" || path == "/readiness" {
			// don't log these requests, only execute them
			c.Next()
			return
		}

		// start timer
		start := time.Now()

		// process request
		c.Next()

		// stop timer
		end := time.Now()

		raw := c.Request.URL.RawQuery
		latency := end.Sub(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		if statusCode >= 500 {
			log.Warn().
				Int("statusCode", statusCode).
				Dur("latencyMs", latency).
				Str("clientIP", clientIP).
				Str("path", path).
				Msgf("[GIN] %3d %13v %15s %-7s %s", statusCode, latency, clientIP, method, path)
		} else {
			log.Debug().
				Int("statusCode", statusCode).
				Dur("latencyMs", latency).
				Str("clientIP", clientIP).
				Str("path", path).
				Msgf("[GIN] %3d %13v %15s %-7s %s", statusCode, latency, clientIP, method, path)
		}
	}
}

// OpenTracingMiddleware creates a span for each request
func OpenTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		path := c.Request.URL.Path
		if path == "/liveness" || path == "/readiness" {
			// don't log these requests, only execute them
			c.Next()
			return
		}

		// retrieve span context from upstream caller if available
		tracingCtx, _ := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(c.Request.Header))

		// create a span for the http request
		span := opentracing.StartSpan(fmt.Sprintf("%v:%v", c.Request.Method, c.Request.URL.Path), ext.RPCServerOption(tracingCtx))
		defer span.Finish()

		ext.SpanKindRPCServer.Set(span)
		ext.HTTPMethod.Set(span, c.Request.Method)
		ext.HTTPUrl.Set(span, c.Request.URL.String())

		// store the span in the request context
		c.Request = c.Request.WithContext(opentracing.ContextWithSpan(c.Request.Context(), span))

		// process request
		c.Next()

		ext.HTTPStatusCode.Set(span, uint16(c.Writer.Status()))
	}
}
