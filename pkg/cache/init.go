package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vidtube.com/config"
)

var redisDB *redis.Client

func Init() {
	redisDB = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := redisDB.Ping(context.Background()).Err(); err != nil {
		logrus.Errorf("could not connect to redis: %v", err)
		return
	}
	logrus.Info("connected to redis")
}
