package models

import "fmt"

// RoomCategory is the closed set of room classes the hotel rents out.
// Unknown values are rejected at the boundary; there is no fallback.
type RoomCategory string

const (
	CategorySingle RoomCategory = "Single"
	CategoryDouble RoomCategory = "Double"
	CategorySuite  RoomCategory = "Suite"
	CategoryBunk   RoomCategory = "Bunk"
)

// maxOccupancy maps each category to the number of guests it can sleep.
var maxOccupancy = map[RoomCategory]int{
	CategorySingle: 1,
	CategoryDouble: 3,
	CategorySuite:  4,
	CategoryBunk:   8,
}

// ParseRoomCategory validates a raw category string against the closed set.
func ParseRoomCategory(raw string) (RoomCategory, error) {
	c := RoomCategory(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown room category %q", raw)
	}
	return c, nil
}

// Valid reports whether the category belongs to the closed set.
func (c RoomCategory) Valid() bool {
	_, ok := maxOccupancy[c]
	return ok
}

// MaxGuests returns the occupancy limit for the category, 0 if unknown.
func (c RoomCategory) MaxGuests() int {
	return maxOccupancy[c]
}

// Room is a single rentable unit. IDs are assigned sequentially from 1 at
// registration time and never change. Available starts true and flips to
// false exactly once when the room is booked; nothing flips it back.
type Room struct {
	ID        int          `json:"id"`
	Category  RoomCategory `json:"category"`
	BaseRate  float64      `json:"baseRate"`
	Available bool         `json:"available"`
}
