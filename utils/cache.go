// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds reservation wizards and order sessions.
	SessionCacheClient *redis.Client
	// CampaignCacheClient holds campaign flags and saved pickup contacts.
	CampaignCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every Redis client used by the server.
func InitRedis() {
	GetSessionCacheClient()
	GetCampaignCacheClient()
}

// GetSessionCacheClient returns the Redis client for session state.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session Cache")
	}
	return SessionCacheClient
}

// GetCampaignCacheClient returns the Redis client for campaign and contact data.
func GetCampaignCacheClient() *redis.Client {
	if CampaignCacheClient == nil {
		CampaignCacheClient = newRedisClient(config.AppConfig.RedisCampaignDB, "Campaign Cache")
	}
	return CampaignCacheClient
}
