// Package middleware provides Echo middleware for the bookmint API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookmint/bookmint/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and
// status per route. Probe and scrape paths are excluded from the
// histogram and counter; /healthz and /readyz instead drive 0/1 gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			switch path {
			case "/metrics":
				return next(c)
			case "/healthz":
				err := next(c)
				setProbeGauge(metrics.HealthzUp, c.Response().Status)
				return err
			case "/readyz":
				err := next(c)
				setProbeGauge(metrics.ReadyzUp, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func setProbeGauge(gauge interface{ Set(float64) }, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
