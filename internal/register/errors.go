package register

import "errors"

// ErrDuplicateID is returned when the identifier about to be assigned is
// already held by another reservation.  The counter is private and only
// ever increments, so this signals corrupted register state.
var ErrDuplicateID = errors.New("duplicate reservation id")

// ErrClientHasReservation is returned when one of the submitted clients
// already belongs to an active reservation.  Handlers should translate
// this into an HTTP 409 response.
var ErrClientHasReservation = errors.New("client already has a reservation")

// ErrReservationNotFound is returned when no active reservation carries
// the requested identifier.  Handlers should translate this into an
// HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrNoClients is returned when a reservation is requested without any
// clients.
var ErrNoClients = errors.New("reservation requires at least one client")
