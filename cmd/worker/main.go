package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/adapters/persistence"
	pageUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/page"
	"github.com/ngocmaitran/portfolio-cms/internal/config"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio CMS Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	pageCache := persistence.NewRedisPageCache(redisClient, appLogger)

	// Worker Use Case
	invalidateUC := pageUC.NewInvalidateCacheUseCase(pageCache, appLogger)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "cache-invalidator-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contentConsumer, msg)
			continue
		}

		if err := invalidateUC.Execute(ctx, payload); err != nil {
			log.Printf("ERROR: Failed to process event for %s %s: %v", payload.Resource, payload.ResourceID, err)
			continue
		}

		commitMessage(contentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
