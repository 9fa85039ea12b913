package handler

import (
	"context"
	"memareh/pkg/log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Health struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", h.Check)
}

// Check 检查数据库和 redis 连通性
func (h *Health) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	code := http.StatusOK

	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		status["redis"] = "down"
		code = http.StatusServiceUnavailable
	}
	if code != http.StatusOK {
		log.L.Warn("health check failed", zap.Any("status", status))
	}

	c.JSON(code, status)
}
