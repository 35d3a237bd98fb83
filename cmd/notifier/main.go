package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"cabanas/internal/notifications"
	"cabanas/pkg/client"
	"cabanas/pkg/config"
	"cabanas/pkg/kafka"
	kafka_config "cabanas/pkg/kafka/config"
	kafka_middleware "cabanas/pkg/kafka/middleware"
	"cabanas/pkg/model"
)

const ServiceName = "notifier"

// The notifier consumes reservation confirmation events and delivers the
// guest email out of the booking request path.
func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	httpClient := client.NewHttpClient(cfg.EmailAPIURL)
	emailNotifier := notifications.NewEmailNotifier(httpClient, cfg.EmailAPIKey, cfg.EmailFrom, cfg.Log)

	handler := func(ctx context.Context, msg kafka.Message) error {
		var event notifications.ReservationConfirmed
		if err := msg.DecodeValue(&event); err != nil {
			cfg.Log.Error("Failed to decode confirmation event",
				"event_id", msg.GetEventID(),
				"error", err,
			)
			return err
		}

		cabin := eventCabin(&event)
		return emailNotifier.Notify(ctx, &event.Reservation, cabin)
	}

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.ReservationTopic,
		cfg.NotifierGroupID,
		cfg.ReservationDLQTopic,
		handler,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting notifier", "topic", cfg.ReservationTopic, "group_id", cfg.NotifierGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}

// eventCabin rebuilds the cabin view the email template needs from the event
// payload, sparing the notifier a database dependency.
func eventCabin(event *notifications.ReservationConfirmed) *model.Cabin {
	return &model.Cabin{
		ID:   event.Reservation.CabinID,
		Name: event.CabinName,
	}
}
