// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"summitos/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds TTL-bounded booking sessions.
	SessionCacheClient *redis.Client
	// TelemetryCacheClient holds short-lived vehicle position reports.
	TelemetryCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing the session store.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitTelemetryCache initializes the Redis client for telemetry caching.
func InitTelemetryCache() {
	TelemetryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTelemetryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := TelemetryCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Telemetry): %v", err)
	}
}

// GetTelemetryCacheClient returns the telemetry cache client.
func GetTelemetryCacheClient() *redis.Client {
	if TelemetryCacheClient == nil {
		InitTelemetryCache()
	}
	return TelemetryCacheClient
}
