package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/blog-backend/internal/config"
	"github.com/deppfellow/blog-backend/internal/middleware"
	"github.com/deppfellow/blog-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves /status. The database check decides the overall
// status; Redis only backs engagement notifications, so a Redis failure
// is reported without failing the endpoint.
type HealthHandler struct {
	Handler
	checks   map[string]HealthCheck
	critical map[string]bool
	timeout  time.Duration
}

// NewHealthHandler enables the checks listed in the observability config.
func NewHealthHandler(s *server.Server) *HealthHandler {
	checks := map[string]HealthCheck{}
	obs := s.Config.Observability

	if obs.HasCheck(config.CheckDatabase) && s.DB != nil {
		checks[config.CheckDatabase] = func(ctx context.Context) error {
			return s.DB.Pool.Ping(ctx)
		}
	}
	if obs.HasCheck(config.CheckRedis) && s.Redis != nil {
		checks[config.CheckRedis] = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}

	return newHealthHandler(s, checks, obs.HealthChecks.Timeout)
}

func newHealthHandler(s *server.Server, checks map[string]HealthCheck, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthHandler{
		Handler:  NewHandler(s),
		checks:   checks,
		critical: map[string]bool{config.CheckDatabase: true},
		timeout:  timeout,
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every critical check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			response.Checks[name] = checkResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}
			if h.critical[name] {
				response.Status = "unhealthy"
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":       name,
					"operation":        "health_check",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		response.Checks[name] = checkResult{
			Status:       "healthy",
			ResponseTime: elapsed.String(),
		}
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
