package repositories

import (
	"path/filepath"
	"testing"

	"NileDialysis/cache"
	"NileDialysis/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database and migrates the given tables.
func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	return db
}

// newTestCache points the package-level Redis client at an in-process server
// for the duration of the test and returns a cache backed by it.
func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	previous := database.RedisClient
	database.RedisClient = client
	t.Cleanup(func() {
		database.RedisClient = previous
		client.Close()
	})

	c, err := cache.NewCache(client)
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	return c
}
