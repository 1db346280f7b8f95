package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker probes one dependency of the running app
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc struct {
	CheckerName string
	Fn          func(ctx context.Context) error
}

func (c CheckerFunc) Name() string                    { return c.CheckerName }
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

// buildInfo describes the running binary
type buildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

type componentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readiness struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

func pingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := buildInfo{
		Version:     os.Getenv("VERSION"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if info.Version == "" {
		info.Version = "development"
	}

	return func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

func readyHandler(checkers []Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		result := readiness{
			Status:     "ready",
			Components: make(map[string]componentStatus, len(checkers)),
		}

		code := http.StatusOK
		for _, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				result.Status = "degraded"
				result.Components[checker.Name()] = componentStatus{Status: "down", Error: err.Error()}
				code = http.StatusServiceUnavailable
				continue
			}
			result.Components[checker.Name()] = componentStatus{Status: "up"}
		}

		return c.JSON(code, result)
	}
}

// RegisterHealthEndpoints registers liveness and readiness routes. These stay
// outside the session guard so probes work while logged out.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	e.GET("/ping", pingHandler(serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", readyHandler(checkers))
}
