package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/response"
)

// HealthHandler reports liveness of the process and its backing services.
type HealthHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:      pool,
		rdb:       rdb,
		startTime: time.Now(),
	}
}

// Health godoc
// GET /api/health
// Pings PostgreSQL and Redis and reports the cleanup queue depth. A failing
// dependency is reported per-component; the endpoint itself stays 200 so
// load balancers keep routing while the issue is visible.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if err := h.pool.Ping(ctx); err != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "ok"
	var queueDepth int64
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = "unreachable"
	} else {
		queueDepth, _ = h.rdb.LLen(ctx, config.CacheKey.AssetCleanupQueue()).Result()
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"status":              "ok",
		"uptime":              formatUptime(time.Since(h.startTime)),
		"database":            dbStatus,
		"redis":               redisStatus,
		"asset_cleanup_queue": queueDepth,
	})
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
