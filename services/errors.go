// Package services holds the booking core: customer registry, room
// inventory, pricing policy and the booking ledger. The sentinel errors
// below let handlers distinguish the failure scenarios and pick a
// matching HTTP status without parsing messages.
package services

import "errors"

var (
	// ErrNoInventory is returned when no rooms have been registered at all.
	ErrNoInventory = errors.New("hotel: no rooms registered")

	// ErrUnknownCustomer is returned when a customer id has no registration.
	ErrUnknownCustomer = errors.New("hotel: unknown customer")

	// ErrInvalidDateRange is returned when check-in is not strictly before
	// check-out.
	ErrInvalidDateRange = errors.New("hotel: check-in date must be before check-out date")

	// ErrNoAvailability is returned when every room of the requested
	// category is already booked.
	ErrNoAvailability = errors.New("hotel: no available room of the requested category")

	// ErrRoomNotFound is returned for lookups of unregistered room ids.
	ErrRoomNotFound = errors.New("hotel: room not found")

	// ErrAlreadyBooked signals a booking against a room that is already
	// unavailable. FindAvailable never hands out such a room, so hitting
	// this is a programming fault, not a user-facing condition.
	ErrAlreadyBooked = errors.New("hotel: room already booked")

	// ErrUnknownCategory is returned when a category is outside the closed
	// Single/Double/Suite/Bunk set.
	ErrUnknownCategory = errors.New("hotel: unknown room category")

	// ErrNegativeRate is returned when a room is registered with a
	// negative base rate.
	ErrNegativeRate = errors.New("hotel: base rate must not be negative")
)
