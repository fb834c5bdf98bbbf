package cache

import (
	"context"
	"time"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the configured redis. It returns nil when no address is set.
func InitRedis(ctx context.Context) (*redis.Client, error) {
	if config.ConfigInfo.Redis.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "ping redis %s failed", config.ConfigInfo.Redis.Addr)
	}
	hlog.Infof("Connect redis success: %s", config.ConfigInfo.Redis.Addr)
	return client, nil
}
