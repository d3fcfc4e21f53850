package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// Check reports whether one dependency is usable
type Check func(ctx context.Context) error

// BuildInfo is returned by /ping
type BuildInfo struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// Readiness is returned by /ready
type Readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// RegisterHealthEndpoints registers liveness endpoints and a readiness endpoint
// that runs every check with a shared timeout
func RegisterHealthEndpoints(e *echo.Echo, service, version string, checks map[string]Check) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Service:    service,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
		})
	})

	alive := func(c echo.Context) error { return c.String(http.StatusOK, "OK") }
	e.GET("/health", alive)
	e.GET("/healthz", alive)

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		res := Readiness{Status: "ready", Dependencies: make(map[string]string, len(checks))}
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				res.Status = "not_ready"
				res.Dependencies[name] = err.Error()
				continue
			}
			res.Dependencies[name] = "ok"
		}

		if res.Status != "ready" {
			return c.JSON(http.StatusServiceUnavailable, res)
		}
		return c.JSON(http.StatusOK, res)
	})
}
