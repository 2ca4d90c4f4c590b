package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"studyspace/config"
)

var (
	// SessionClient is the dedicated client for browser sessions.
	SessionClient *redis.Client
	// CacheClient is the client for short-lived read caches (spaces list).
	CacheClient *redis.Client
)

// InitSessionStore initializes the Redis client backing browser sessions.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the session Redis client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitCache initializes the Redis client for read caching.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the read-cache Redis client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
