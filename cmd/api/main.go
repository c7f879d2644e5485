package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"

	"vidtube.com/cmd/api/router"
	interaction "vidtube.com/cmd/interaction/service"
	"vidtube.com/config"
	"vidtube.com/dal/db"
	jwt "vidtube.com/pkg"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(1, 1); err != nil {
		logrus.Fatalf("snowflake init failed: %v", err)
	}
	db.Init()
	cache.Init()
	oss.Init()
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
	startLikeEventPipeline()
}

// startLikeEventPipeline connects the producer that emits like events and
// the consumer that reconciles the denormalized counters. A missing broker
// is logged but does not stop the service.
func startLikeEventPipeline() {
	cfg := config.ConfigInfo.RabbitMq
	url := fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)

	producer, err := mq.NewProducer(url)
	if err != nil {
		logrus.Errorf("rabbitmq producer unavailable: %v", err)
		return
	}
	interaction.InitLikeProducer(producer)

	consumer, err := mq.NewConsumer(url)
	if err != nil {
		logrus.Errorf("rabbitmq consumer unavailable: %v", err)
		return
	}
	go func() {
		if err := consumer.Start(context.Background(), interaction.ReconcileLikeCounter); err != nil {
			logrus.Errorf("like event consumer stopped: %v", err)
		}
	}()
}

func main() {
	Init()

	h := server.Default(server.WithHostPorts(config.ConfigInfo.Server.Addr))
	h.Use(cors.New(cors.Config{
		AllowAllOrigins:  false,
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Refresh-Token"},
		ExposeHeaders:    []string{"New-Access-Token"},
		AllowCredentials: true,
	}))

	router.Register(h)
	h.Spin()
}
