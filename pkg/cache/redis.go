package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration
type Config struct {
	Address  string
	Password string
	DB       int
}

// RedisConfig mirrors the main config package's Redis section so callers
// can pass it through without importing this package's Config directly.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

var redisClient *RedisClient

func NewConfigFromRedisConfig(rc RedisConfig) Config {
	address := rc.Addr
	if address == "" {
		address = rc.Host + ":" + rc.Port
	}

	return Config{
		Address:  address,
		Password: rc.Password,
		DB:       rc.DB,
	}
}

// Init initializes the package-level Redis client and verifies connectivity.
func Init(cfg Config) error {
	if cfg.Address == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	redisClient = &RedisClient{
		client: client,
		ctx:    context.Background(),
	}

	return nil
}

func InitWithRedisConfig(rc RedisConfig) error {
	return Init(NewConfigFromRedisConfig(rc))
}

// Client returns the Redis client instance, or nil before Init.
func Client() *redis.Client {
	if redisClient == nil {
		return nil
	}
	return redisClient.client
}

func Close() error {
	if redisClient == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	if err := redisClient.client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	redisClient = nil
	return nil
}

func IsInitialized() bool {
	return redisClient != nil && redisClient.client != nil
}

// Ping tests the Redis connection
func Ping() error {
	if redisClient == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(redisClient.ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}
