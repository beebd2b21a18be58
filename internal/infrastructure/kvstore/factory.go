package kvstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"civicpulse/internal/shared/config"
)

// New returns the backend named by cfg.Backend. The redis client and gorm
// handle are only required by their own backends.
func New(cfg *config.StorageConfig, rdb *redis.Client, db *gorm.DB) (Store, error) {
	switch cfg.Backend {
	case "memory", "":
		return NewMemoryStore(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("redis backend selected but no redis client configured")
		}
		return NewRedisStore(rdb, cfg.KeyPrefix), nil
	case "database":
		if db == nil {
			return nil, fmt.Errorf("database backend selected but no database configured")
		}
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
