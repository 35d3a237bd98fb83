package notifications

import (
	"context"

	"cabanas/pkg/kafka"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"
)

const (
	EventTypeReservationConfirmed = "reservation.confirmed"
	eventSource                   = "cabanas-server"
)

// Notifier delivers the confirmation for a freshly created reservation.
// Delivery is advisory: the reservation is already persisted when Notify runs
// and a failure here never unwinds it.
type Notifier interface {
	Notify(ctx context.Context, reservation *model.Reservation, cabin *model.Cabin) error
}

// ReservationConfirmed is the event payload published when a reservation is
// created. The notifier service consumes it to send the confirmation email.
type ReservationConfirmed struct {
	Reservation model.Reservation `json:"reservation"`
	CabinName   string            `json:"cabin_name"`
}

// EventNotifier hands the confirmation off to Kafka; a separate consumer
// performs the actual email delivery.
type EventNotifier struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewEventNotifier(producer *kafka.Producer, log *logger.Logger) *EventNotifier {
	return &EventNotifier{
		producer: producer,
		log:      log,
	}
}

func (n *EventNotifier) Notify(ctx context.Context, reservation *model.Reservation, cabin *model.Cabin) error {
	msg := kafka.NewMessage().
		WithKey(reservation.CabinID).
		WithValue(ReservationConfirmed{
			Reservation: *reservation,
			CabinName:   cabin.Name,
		}).
		WithEventType(EventTypeReservationConfirmed).
		WithSource(eventSource).
		Build()

	if err := n.producer.Publish(ctx, msg); err != nil {
		n.log.Error("Failed to publish reservation confirmation event",
			"reservation_id", reservation.ID,
			"error", err,
		)
		return err
	}

	return nil
}
