package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/erp/odoo-dashboard/internal/infrastructure/config"
)

// NewReportCache builds the configured cache backend. When Redis is
// selected but unreachable, it falls back to the in-memory backend so a
// cache outage never takes the dashboard down.
func NewReportCache(cfg *config.Config, logger *zap.Logger) (ReportCache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		c, err := NewRedisReportCache(cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, falling back to in-memory report cache", zap.Error(err))
			return NewInMemoryReportCache(logger), nil
		}
		logger.Info("using redis report cache", zap.String("addr", cfg.Redis.Addr()))
		return c, nil
	case "memory":
		return NewInMemoryReportCache(logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
