package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	userIDHeader    = "X-User-ID"
)

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context.
//
// Health probe paths are noisy: a healthy deployment polls them every few
// seconds. A successful probe is logged once, then suppressed until the
// probe fails; failures are always logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	probeLogged := map[string]bool{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			ok := status < 400

			if isProbePath(path) {
				mu.Lock()
				suppress := ok && probeLogged[path]
				probeLogged[path] = ok
				mu.Unlock()
				if suppress {
					return err
				}
			}

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelWarn
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if userID := c.Request().Header.Get(userIDHeader); userID != "" {
				attrs = append(attrs, "user_id", userID)
			}

			log.Log(c.Request().Context(), level, "request", attrs...)
			return err
		}
	}
}

func isProbePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}
