package services

import (
	"log"
	"sync"
	"time"

	"hotel-engine/models"
)

// VIP promotion policy: a customer whose count of reservations starting
// within the trailing year exceeds the threshold is promoted before the
// price of the new booking is computed.
const (
	VIPReservationThreshold = 3
	VIPLookbackYears        = 1
)

// BookingService is the booking ledger. It owns every Reservation, keyed
// by room id, and orchestrates the registry, the inventory and the pricing
// policy into a single booking transaction.
type BookingService struct {
	mu        sync.Mutex
	rooms     *RoomService
	customers *CustomerService

	// reservations per room id, append-only.
	reservations map[int][]models.Reservation

	// now is the clock used for the VIP lookback window. Tests pin it.
	now func() time.Time
}

func NewBookingService(rooms *RoomService, customers *CustomerService) *BookingService {
	return &BookingService{
		rooms:        rooms,
		customers:    customers,
		reservations: make(map[int][]models.Reservation),
		now:          time.Now,
	}
}

// Book reserves the first available room of the requested category for the
// customer and returns the booked room's id.
//
// Preconditions are checked in a fixed order: empty inventory, unknown
// customer, invalid date range, no availability. The whole sequence up to
// and including MarkBooked runs as one critical section so two concurrent
// requests can never claim the same room.
func (s *BookingService) Book(customerID int, category models.RoomCategory, checkIn, checkOut time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rooms.IsEmpty() {
		return 0, ErrNoInventory
	}

	customer, err := s.customers.Lookup(customerID)
	if err != nil {
		return 0, err
	}

	if !checkIn.Before(checkOut) {
		return 0, ErrInvalidDateRange
	}

	room, err := s.rooms.FindAvailable(category)
	if err != nil {
		return 0, err
	}

	// Promotion looks at the history as it stands before this booking,
	// and the new price sees the promoted status.
	if !customer.VIP && s.countRecentLocked(customerID) > VIPReservationThreshold {
		if err := s.customers.PromoteToVIP(customerID); err != nil {
			return 0, err
		}
		customer.VIP = true
		log.Printf("customer #%d promoted to VIP", customerID)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	reservation := models.Reservation{
		ID:         len(s.reservations[room.ID]) + 1,
		CustomerID: customerID,
		RoomID:     room.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Price:      Quote(room.BaseRate, nights, customer.VIP),
	}

	// Claim the room before recording the reservation so a failed claim
	// leaves no history behind on a room that is still reachable.
	if err := s.rooms.MarkBooked(room.ID); err != nil {
		return 0, err
	}
	s.reservations[room.ID] = append(s.reservations[room.ID], reservation)
	return room.ID, nil
}

// countRecentLocked counts the customer's reservations across all rooms
// whose check-in falls strictly after today minus the lookback window.
// Caller holds s.mu.
func (s *BookingService) countRecentLocked(customerID int) int {
	cutoff := s.now().AddDate(-VIPLookbackYears, 0, 0)
	count := 0
	for _, history := range s.reservations {
		for _, r := range history {
			if r.CustomerID == customerID && r.CheckIn.After(cutoff) {
				count++
			}
		}
	}
	return count
}

// ReservationsFor returns the room's append-only reservation history in
// creation order. The room id is not required to exist; unknown rooms have
// an empty history.
func (s *BookingService) ReservationsFor(roomID int) []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.reservations[roomID]
	out := make([]models.Reservation, len(history))
	copy(out, history)
	return out
}

// ListAll returns a read-only snapshot of every reservation, keyed by room
// id, each room's history in creation order.
func (s *BookingService) ListAll() map[int][]models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int][]models.Reservation, len(s.reservations))
	for roomID, history := range s.reservations {
		copied := make([]models.Reservation, len(history))
		copy(copied, history)
		out[roomID] = copied
	}
	return out
}
