package utils

import (
	"context"
	"log"
	"time"

	"karigarstop/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient holds transient booking workflow sessions.
	CacheClient *redis.Client
	// ProfileCacheClient is the dedicated client for the user profile store.
	ProfileCacheClient *redis.Client
	// OTPCacheClient holds password-recovery OTP records.
	OTPCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every Redis client up front.
func InitRedis() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
	ProfileCacheClient = newClient(config.AppConfig.RedisProfileDB)
	OTPCacheClient = newClient(config.AppConfig.RedisOTPDB)
}

// GetCacheClient returns the booking session cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetProfileCacheClient returns the profile store client.
func GetProfileCacheClient() *redis.Client {
	if ProfileCacheClient == nil {
		ProfileCacheClient = newClient(config.AppConfig.RedisProfileDB)
	}
	return ProfileCacheClient
}

// GetOTPCacheClient returns the OTP cache client.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newClient(config.AppConfig.RedisOTPDB)
	}
	return OTPCacheClient
}
