// Package queue defines reservation event payloads exchanged over the
// message broker and the consumer that writes them to the audit log.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationEventsQueue is the durable queue carrying ReservationEvent messages.
const ReservationEventsQueue = "reservation.events"

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published after a reservation is created or
// cancelled.  It carries enough of the reservation for downstream
// consumers to log or notify without calling back into the API.
type ReservationEvent struct {
	EventID       string   `json:"event_id"`
	Type          string   `json:"type"`
	ReservationID uint64   `json:"reservation_id"`
	HotelName     string   `json:"hotel_name"`
	Clients       []string `json:"clients"`
	Duration      int      `json:"duration"`
	Breakfast     bool     `json:"breakfast"`
	Price         float64  `json:"price"`
	OccurredAt    string   `json:"occurred_at"`
}

// NewReservationEvent builds an event of the given type for res.
func NewReservationEvent(eventType string, res model.Reservation) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: res.ID,
		HotelName:     res.HotelName,
		Clients:       res.ClientNames(),
		Duration:      res.Duration,
		Breakfast:     res.Breakfast,
		Price:         res.Price,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
