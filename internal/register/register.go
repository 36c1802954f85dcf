// Package register holds the in-memory set of active hotel reservations.
// A Register keeps reservations in insertion order together with the
// counter used to assign identifiers.  Identifiers start at 1, grow by
// one per successful Add and are never reused, even after Cancel.
package register

import (
	"sync"

	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Register is safe for concurrent use.  Every operation validates fully
// before mutating, so a failed call leaves the register unchanged.
type Register struct {
	log *zap.Logger

	mu           sync.Mutex
	reservations []model.Reservation
	nextID       uint64
}

// New returns an empty register.  A nil logger disables logging.
func New(logger *zap.Logger) *Register {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Register{
		log:          logger,
		reservations: make([]model.Reservation, 0),
		nextID:       1,
	}
}

// Add books a stay for clients.  It fails with ErrClientHasReservation
// when any client name is already part of an active reservation.  The
// returned value is a copy; changing it does not affect the register.
func (r *Register) Add(clients []model.Client, duration int, breakfast bool) (model.Reservation, error) {
	if len(clients) == 0 {
		return model.Reservation{}, ErrNoClients
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, client := range clients {
		for _, held := range r.reservations {
			if held.HasClient(client.Name) {
				r.log.Debug("client already booked",
					zap.String("client", client.Name),
					zap.Uint64("reservation_id", held.ID))
				return model.Reservation{}, ErrClientHasReservation
			}
		}
	}

	res := model.Reservation{
		ID:        r.nextID,
		HotelName: model.HotelName,
		Clients:   append([]model.Client(nil), clients...),
		Duration:  duration,
		Price:     Price(len(clients), duration, breakfast),
		Breakfast: breakfast,
	}
	if r.indexOf(res.ID) >= 0 {
		r.log.Error("reservation id collision", zap.Uint64("reservation_id", res.ID))
		return model.Reservation{}, ErrDuplicateID
	}

	r.reservations = append(r.reservations, res)
	r.nextID++

	r.log.Debug("reservation added",
		zap.Uint64("reservation_id", res.ID),
		zap.Int("clients", len(res.Clients)),
		zap.Float64("price", res.Price))
	return res.Clone(), nil
}

// Cancel removes the reservation with the given id and returns it.  The
// order of the remaining reservations is preserved.
func (r *Register) Cancel(id uint64) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Reservation{}, ErrReservationNotFound
	}
	removed := r.reservations[i]
	r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)

	r.log.Debug("reservation cancelled", zap.Uint64("reservation_id", id))
	return removed, nil
}

// All returns a snapshot of the active reservations in insertion order.
func (r *Register) All() []model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		out = append(out, res.Clone())
	}
	return out
}

// Get returns the reservation with the given id.
func (r *Register) Get(id uint64) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Reservation{}, ErrReservationNotFound
	}
	return r.reservations[i].Clone(), nil
}

// Len reports the number of active reservations.
func (r *Register) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reservations)
}

// indexOf must be called with mu held.
func (r *Register) indexOf(id uint64) int {
	for i, res := range r.reservations {
		if res.ID == id {
			return i
		}
	}
	return -1
}
