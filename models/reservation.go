package models

import "time"

// Reservation records one successful booking of a room.
//
// Fields:
//
//	ID         – 1-based, sequential within the owning room's history.
//	CustomerID – customer who booked; a reference, never a pointer.
//	RoomID     – room that was booked.
//	CheckIn    – first night of the stay.
//	CheckOut   – day of departure, strictly after CheckIn.
//	Price      – final price with discounts applied, immutable once set.
type Reservation struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customerId"`
	RoomID     int       `json:"roomId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Price      float64   `json:"price"`
}

// Nights returns the whole-day length of the stay.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
