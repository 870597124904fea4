package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the response cache and the unit-wide mutual exclusion
// locks (patient archive moves, purchase order completion). It is set once
// by InitializeRedis during startup.
var RedisClient *redis.Client

type redisSettings struct {
	url          string
	poolSize     int
	minIdleConns int
	dialTimeout  time.Duration
	readTimeout  time.Duration
	maxRetries   int
}

// InitializeRedis connects the package-level client using REDIS_URL and the
// optional REDIS_* tuning variables.
func InitializeRedis() error {
	settings, err := redisSettingsFromEnv()
	if err != nil {
		return err
	}

	opt, err := redis.ParseURL(settings.url)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.PoolSize = settings.poolSize
	opt.MinIdleConns = settings.minIdleConns
	opt.DialTimeout = settings.dialTimeout
	opt.ReadTimeout = settings.readTimeout
	opt.MaxRetries = settings.maxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis server: %w", err)
	}

	RedisClient = client
	log.Printf("Redis connected: PoolSize=%d, MinIdleConns=%d, DialTimeout=%s, ReadTimeout=%s, MaxRetries=%d",
		settings.poolSize, settings.minIdleConns, settings.dialTimeout, settings.readTimeout, settings.maxRetries)
	return nil
}

func redisSettingsFromEnv() (redisSettings, error) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return redisSettings{}, errors.New("REDIS_URL environment variable is not set")
	}
	return redisSettings{
		url:          url,
		poolSize:     envInt("REDIS_POOL_SIZE", 20),
		minIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 4),
		dialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 15*time.Second),
		readTimeout:  envDuration("REDIS_READ_TIMEOUT", 5*time.Second),
		maxRetries:   envInt("REDIS_MAX_RETRIES", 3),
	}, nil
}

func envInt(name string, fallback int) int {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s, using default %d", name, fallback)
		return fallback
	}
	return n
}

func envDuration(name string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s, using default %s", name, fallback)
		return fallback
	}
	return d
}

// NewLock takes a named lock via SETNX. The value must be unique per holder
// so that ReleaseLock only ever removes the caller's own lock.
func NewLock(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if RedisClient == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return RedisClient.SetNX(ctx, key, value, ttl).Result()
}

// unlockScript deletes the key only while the caller still owns it. The
// compare and delete must be one atomic step or an expired lock could take
// down a successor's lock.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// ReleaseLock frees a lock previously taken with NewLock.
func ReleaseLock(ctx context.Context, key string, value string) error {
	if RedisClient == nil {
		return errors.New("Redis client is not initialized")
	}
	result, err := unlockScript.Run(ctx, RedisClient, []string{key}, value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n, ok := result.(int64); !ok || n == 0 {
		return errors.New("lock release failed: not the lock owner")
	}
	return nil
}
