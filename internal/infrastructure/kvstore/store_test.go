package kvstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"civicpulse/internal/infrastructure/persistence/migrations"
	"civicpulse/internal/shared/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.MigrateKVTables(db))
	return db
}

func backends(t *testing.T) map[string]Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Store{
		"memory":   NewMemoryStore(),
		"redis":    NewRedisStore(client, "test:"),
		"database": NewGormStore(newTestDB(t)),
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := store.Get(ctx, "user-points")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "user-points", "20"))
			v, found, err := store.Get(ctx, "user-points")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "20", v)

			require.NoError(t, store.Set(ctx, "user-points", "40"))
			v, _, err = store.Get(ctx, "user-points")
			require.NoError(t, err)
			assert.Equal(t, "40", v)

			require.NoError(t, store.Set(ctx, "empty", ""))
			v, found, err = store.Get(ctx, "empty")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Empty(t, v)
		})
	}
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "civicpulse:")

	require.NoError(t, store.Set(context.Background(), "user-badges", `["Community Helper"]`))

	got, err := mr.Get("civicpulse:user-badges")
	require.NoError(t, err)
	assert.Equal(t, `["Community Helper"]`, got)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	store := NewRedisStore(client, "")
	mr.Close()

	_, _, err := store.Get(context.Background(), "citizen-complaints")
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	s, err := New(&config.StorageConfig{Backend: "memory"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New(&config.StorageConfig{Backend: "redis"}, nil, nil)
	assert.Error(t, err)

	_, err = New(&config.StorageConfig{Backend: "database"}, nil, nil)
	assert.Error(t, err)

	s, err = New(&config.StorageConfig{Backend: "database"}, nil, newTestDB(t))
	require.NoError(t, err)
	assert.IsType(t, &GormStore{}, s)

	_, err = New(&config.StorageConfig{Backend: "etcd"}, nil, nil)
	assert.Error(t, err)
}
