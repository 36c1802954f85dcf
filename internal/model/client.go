package model

// Client is a guest attached to a reservation.  Name is the identity
// key used when checking whether a guest is already booked; no other
// field takes part in that comparison.
//
// Fields:
//  Name   – guest name, unique across active reservations.
//  Age    – age in years.
//  Height – height in metres.
type Client struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`
}
