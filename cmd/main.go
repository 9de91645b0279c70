package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jsenjoyer123/OptiFi/configs"
	"github.com/jsenjoyer123/OptiFi/internal/app/router"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/kafka/producer"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/logger"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/otel"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/services"
	"github.com/jsenjoyer123/OptiFi/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}
	if shutdownTracing != nil {
		defer shutdownTracing(ctx)
	}

	var redisClient *redis.Client
	if configs.REDIS_ADDR != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     configs.REDIS_ADDR,
			Password: configs.REDIS_PASSWORD,
			DB:       configs.REDIS_DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "Redis unreachable, catalog caching disabled: %v", err)
			redisClient = nil
		} else {
			logger.Info(ctx, "Connected to Redis")
			defer redisClient.Close()
		}
	}

	var auditPublisher services.AuditPublisher
	if configs.KAFKA_SERVER != "" {
		kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_SERVER, configs.KAFKA_TOPIC)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka producer: %v", err)
		} else {
			logger.Info(ctx, "Kafka Producer Created")
			auditPublisher = kafkaProducer
			defer kafkaProducer.Close()
		}
	}

	workerPool := worker.NewPool(configs.WORKER_POOL)
	defer workerPool.Stop()

	r := router.SetupRouter(workerPool, redisClient, auditPublisher)

	port := configs.SERVER_PORT
	logger.Info(ctx, "Refinance engine listening on port %s", port)

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
