// Package health exposes health and readiness endpoints.
package health

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/redis"
)

// Checker handles health check endpoints
type Checker struct {
	cache              *redis.Client
	providerConfigured bool
	version            string
	startTime          time.Time
	ready              atomic.Bool
}

// NewChecker creates a new health checker. cache may be nil when the
// advice cache is disabled.
func NewChecker(cache *redis.Client, providerConfigured bool, version string) *Checker {
	return &Checker{
		cache:              cache,
		providerConfigured: providerConfigured,
		version:            version,
		startTime:          time.Now(),
	}
}

// SetReady sets the readiness state
func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

// RegisterRoutes registers health check endpoints
func (c *Checker) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", c.Health)
	e.GET("/api/health/live", c.Live)
	e.GET("/api/health/ready", c.Ready)
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string                  `json:"status"`
	Version    string                  `json:"version"`
	Uptime     string                  `json:"uptime"`
	Checks     map[string]*CheckResult `json:"checks"`
	ReportedAt time.Time               `json:"reportedAt"`
}

// CheckResult represents an individual check result
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Health returns the overall health status. The service holds its state in
// memory, so only optional collaborators are checked; a missing reasoning
// provider degrades rather than fails because every other endpoint still
// works without it.
func (c *Checker) Health(ctx echo.Context) error {
	status := &HealthStatus{
		Status:     "ok",
		Version:    c.version,
		Uptime:     time.Since(c.startTime).Round(time.Second).String(),
		Checks:     make(map[string]*CheckResult),
		ReportedAt: time.Now(),
	}

	if c.providerConfigured {
		status.Checks["reasoning_provider"] = &CheckResult{Status: "ok"}
	} else {
		status.Status = "degraded"
		status.Checks["reasoning_provider"] = &CheckResult{
			Status:  "degraded",
			Message: "reasoning provider not configured",
		}
	}

	if c.cache != nil {
		start := time.Now()
		err := c.cache.Ping(ctx.Request().Context())
		latency := time.Since(start)

		if err != nil {
			status.Status = "degraded"
			status.Checks["cache"] = &CheckResult{
				Status:  "degraded",
				Message: err.Error(),
			}
		} else {
			status.Checks["cache"] = &CheckResult{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	return ctx.JSON(http.StatusOK, status)
}

// Live returns the liveness status (is the service running)
func (c *Checker) Live(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready returns the readiness status (is the service ready to accept traffic)
func (c *Checker) Ready(ctx echo.Context) error {
	if c.ready.Load() {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
	return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
}
