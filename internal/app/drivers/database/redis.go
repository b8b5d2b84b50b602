package database

import (
	"context"
	"fmt"
	"time"

	"finalform-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the optional redis backend for the form-input
// item-map store.
func NewRedisClient(driverConfig *config.DriverConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}
