package services

import (
	"sync"

	"hotel-engine/models"
)

// RoomService is the room inventory. Rooms are kept in registration order;
// ids are the 1-based position in that order and never reused.
type RoomService struct {
	mu    sync.RWMutex
	rooms []*models.Room
}

func NewRoomService() *RoomService {
	return &RoomService{}
}

// Register adds a room of the given category at the given nightly base
// rate. The category must belong to the closed set and the rate must not
// be negative. New rooms start available.
func (s *RoomService) Register(category models.RoomCategory, baseRate float64) (models.Room, error) {
	if !category.Valid() {
		return models.Room{}, ErrUnknownCategory
	}
	if baseRate < 0 {
		return models.Room{}, ErrNegativeRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room := &models.Room{
		ID:        len(s.rooms) + 1,
		Category:  category,
		BaseRate:  baseRate,
		Available: true,
	}
	s.rooms = append(s.rooms, room)
	return *room, nil
}

// Get returns the room with the given id, or ErrRoomNotFound.
func (s *RoomService) Get(id int) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.rooms) {
		return models.Room{}, ErrRoomNotFound
	}
	return *s.rooms[id-1], nil
}

// FindAvailable returns the first available room of the requested category
// in registration order. Pure query: the caller is responsible for marking
// the room booked.
func (s *RoomService) FindAvailable(category models.RoomCategory) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.Category == category && room.Available {
			return *room, nil
		}
	}
	return models.Room{}, ErrNoAvailability
}

// MarkBooked flips the room's availability to false. Returns
// ErrAlreadyBooked if the room is already unavailable; the booked state is
// terminal in this design and is never reset.
func (s *RoomService) MarkBooked(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.rooms) {
		return ErrRoomNotFound
	}
	room := s.rooms[id-1]
	if !room.Available {
		return ErrAlreadyBooked
	}
	room.Available = false
	return nil
}

// ListAvailable returns the rooms currently available, in registration
// order.
func (s *RoomService) ListAvailable() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		if room.Available {
			out = append(out, *room)
		}
	}
	return out
}

// IsEmpty reports whether no rooms have been registered yet.
func (s *RoomService) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms) == 0
}
