package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kindlyrss/internal/logger"
)

// RequestLoggerMiddleware writes one access log line per request. Server
// errors log at error level, client errors at warn and the rest at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= http.StatusBadRequest {
				result = "failed"
			}

			logf := logger.Debug
			switch {
			case status >= http.StatusInternalServerError:
				logf = logger.Error
			case status >= http.StatusBadRequest:
				logf = logger.Warn
			}
			logf("http request",
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			)
			return nil
		}
	}
}
