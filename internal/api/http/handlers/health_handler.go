package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-board/internal/config"
	"github.com/spec-kit/ticket-board/internal/domain"
	"github.com/spec-kit/ticket-board/internal/persistence"
)

// SyncStatusReader exposes the recorded fetch outcomes.
type SyncStatusReader interface {
	Status(ctx context.Context) (domain.SyncStatus, error)
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	upstream    config.UpstreamConfig
	redis       *persistence.Redis
	sync        SyncStatusReader
}

// NewHealthHandler returns a new handler instance. redis may be nil when not configured.
func NewHealthHandler(serviceName, version string, upstream config.UpstreamConfig, redis *persistence.Redis, sync SyncStatusReader) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, upstream: upstream, redis: redis, sync: sync}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness: credentials present and Redis reachable
// when configured. The last sync outcome is informational only.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if !h.upstream.Configured() {
		depStatus["credentials"] = fiber.Map{"missing": h.upstream.MissingCredentials()}
		ready = false
	} else {
		depStatus["credentials"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			depStatus["redis"] = err.Error()
			ready = false
		} else {
			depStatus["redis"] = "ok"
		}
	}

	if h.sync != nil {
		if status, err := h.sync.Status(ctx); err == nil {
			depStatus["last_sync"] = fiber.Map{
				"healthy":         status.Healthy(),
				"last_success_at": status.LastSuccessAt,
				"active_count":    status.ActiveCount,
				"last_failure_at": status.LastFailureAt,
				"last_error":      status.LastError,
			}
		} else {
			depStatus["last_sync"] = err.Error()
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
