package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"motorent-backend/internal/config"
	"motorent-backend/internal/events"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository/postgres"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting registration event consumer", "channel", cfg.Redis.Channel)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)

	redisClient := events.NewRedisClient(cfg.Redis.Addr)
	defer redisClient.Close()

	consumer := events.NewConsumer(redisClient, cfg.Redis.Channel, cfg.Events.TrackedYear, store.RegistrationEventRepository)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Consumer failed: %v", err)
	}
	logger.Info("Consumer stopped")
}
