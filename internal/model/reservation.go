package model

// HotelName is the only hotel handled by the register.
const HotelName = "Hotel 1"

// Reservation records a booked stay for one or more clients.  Values
// are created by the register and never modified afterwards; every
// copy handed out owns its own Clients slice.
//
// Fields:
//  ID        – identifier assigned by the register, never reused.
//  HotelName – always HotelName.
//  Clients   – guests in the order they were submitted.
//  Duration  – length of the stay in nights.
//  Price     – total price computed at booking time.
//  Breakfast – whether breakfast is included.
type Reservation struct {
	ID        uint64   `json:"id"`
	HotelName string   `json:"hotel_name"`
	Clients   []Client `json:"clients"`
	Duration  int      `json:"duration"`
	Price     float64  `json:"price"`
	Breakfast bool     `json:"breakfast"`
}

// Clone returns a copy of r that shares no memory with it.
func (r Reservation) Clone() Reservation {
	out := r
	if r.Clients != nil {
		out.Clients = make([]Client, len(r.Clients))
		copy(out.Clients, r.Clients)
	}
	return out
}

// ClientNames lists the names of the reservation's clients in order.
func (r Reservation) ClientNames() []string {
	names := make([]string, 0, len(r.Clients))
	for _, c := range r.Clients {
		names = append(names, c.Name)
	}
	return names
}

// HasClient reports whether a client with the given name belongs to r.
func (r Reservation) HasClient(name string) bool {
	for _, c := range r.Clients {
		if c.Name == name {
			return true
		}
	}
	return false
}
