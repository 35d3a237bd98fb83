package main

import (
	cabinhandler "cabanas/internal/cabins/handler"
	cabinrepo "cabanas/internal/cabins/repository"
	cabinservice "cabanas/internal/cabins/service"
	"cabanas/internal/notifications"
	"cabanas/internal/reservations/handler"
	"cabanas/internal/reservations/repository"
	"cabanas/internal/reservations/service"
	"cabanas/internal/reservations/validator"
	"cabanas/pkg/app"
	"cabanas/pkg/client"
	"cabanas/pkg/config"
	mongodb "cabanas/pkg/db/mongo"
	"cabanas/pkg/kafka"
	kafka_config "cabanas/pkg/kafka/config"
	kafka_middleware "cabanas/pkg/kafka/middleware"
)

const ServiceName = "server"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting reservations server")

	notifier, cleanup := initNotifier(cfg)
	defer cleanup()

	reservationService, cabinService := initServices(cfg, notifier)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, cfg.Log),
		cabinhandler.NewCabinHandler(cabinService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, notifier notifications.Notifier) (service.ReservationService, cabinservice.CabinService) {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	txManager := mongodb.NewTransactionManager(cfg.Client.Mongo)

	cabinRepo := cabinrepo.NewMongoCabinRepository(db, cfg.Log)
	reservationRepo := repository.NewMongoReservationRepository(db, txManager, cfg.Log)
	lockRepo := repository.NewMongoLockRepository(db, cfg.Log)

	reservationService := service.NewReservationService(
		reservationRepo,
		lockRepo,
		cabinRepo,
		validator.NewReservationValidator(),
		notifier,
		cfg.LockTTL,
		cfg.Log,
	)
	cabinService := cabinservice.NewCabinService(cabinRepo, cfg.Log)

	cfg.Log.Info("Reservations server initialized", "database", cfg.MongoDatabaseName)
	return reservationService, cabinService
}

func initNotifier(cfg *config.Config) (notifications.Notifier, func()) {
	if cfg.NotifyMode == config.NotifyModeKafka {
		kafkaCfg, err := kafka_config.Load()
		if err != nil {
			cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
		}

		producer, err := kafka.NewProducer(kafkaCfg, cfg.ReservationTopic, cfg.ReservationDLQTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

		cfg.Log.Info("Confirmation delivery via Kafka", "topic", cfg.ReservationTopic)
		return notifications.NewEventNotifier(producer, cfg.Log), func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}
	}

	httpClient := client.NewHttpClient(cfg.EmailAPIURL)
	cfg.Log.Info("Confirmation delivery via email API", "from", cfg.EmailFrom)
	return notifications.NewEmailNotifier(httpClient, cfg.EmailAPIKey, cfg.EmailFrom, cfg.Log), func() {}
}
