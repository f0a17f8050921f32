package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "motorent-backend/internal/api/http"
	"motorent-backend/internal/config"
	"motorent-backend/internal/events"
	"motorent-backend/internal/jobs"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository/postgres"
	"motorent-backend/internal/scheduler"
	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental fleet backend", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMw := api.NewAuthMiddleware(tokenManager)

	redisClient := events.NewRedisClient(cfg.Redis.Addr)
	defer redisClient.Close()
	publisher := events.NewRedisPublisher(redisClient, cfg.Redis.Channel)

	deliverymanSvc := service.NewDeliverymanService(store.DeliverymanRepository)
	motorcycleSvc := service.NewMotorcycleService(store.MotorcycleRepository, store.RentalRepository, publisher)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.DeliverymanRepository, deliverymanSvc)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	eventSvc := service.NewRegistrationEventService(store.RegistrationEventRepository)

	router := api.NewRouter(
		authMw,
		api.NewAuthHandler(authSvc),
		api.NewMotorcycleHandler(motorcycleSvc),
		api.NewDeliverymanHandler(deliverymanSvc),
		api.NewRentalHandler(rentalSvc),
		api.NewRegistrationEventHandler(eventSvc),
	)

	jobRunner := jobs.NewJobRunner(store.RentalRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
