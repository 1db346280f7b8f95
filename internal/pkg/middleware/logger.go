package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
)

// RequestLogger logs every HTTP request with method, path, status and latency
func RequestLogger(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			zapLogger.Info("HTTP request",
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.Int("status", c.Response().Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("client_ip", c.RealIP()),
			)

			return err
		}
	}
}
