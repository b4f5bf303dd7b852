package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware returns an echo middleware that logs every request
// through the global logger.
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				String("client_ip", c.RealIP()),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, ErrorField(err))
			}

			switch {
			case res.Status >= 500:
				Error("HTTP request", fields...)
			case res.Status >= 400:
				Warn("HTTP request", fields...)
			default:
				Info("HTTP request", fields...)
			}

			return err
		}
	}
}
