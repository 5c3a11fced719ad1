package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-engine/models"
	"hotel-engine/services"
	"hotel-engine/utils"
)

// DateFormat is the wire format for stay dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

type BookingController struct {
	BookingSvc *services.BookingService
	RoomSvc    *services.RoomService
}

func NewBookingController(bookingSvc *services.BookingService, roomSvc *services.RoomService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, RoomSvc: roomSvc}
}

type CreateBookingRequest struct {
	CustomerID int    `json:"customerId" binding:"required"`
	Category   string `json:"category" binding:"required,roomcategory"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
}

// CreateBooking (POST /api/bookings) books the first available room of the
// requested category and returns its id.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	checkIn, err := time.Parse(DateFormat, req.CheckIn)
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "checkIn", "must be a date like 2026-01-31")
		return
	}
	checkOut, err := time.Parse(DateFormat, req.CheckOut)
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "checkOut", "must be a date like 2026-01-31")
		return
	}

	roomID, err := ctrl.BookingSvc.Book(req.CustomerID, models.RoomCategory(req.Category), checkIn, checkOut)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"roomId": roomID})
}

// respondBookingError translates ledger errors into HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoInventory), errors.Is(err, services.ErrNoAvailability):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnknownCustomer):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		// ErrAlreadyBooked and anything else here is a logic fault.
		log.Printf("booking failed unexpectedly: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "booking failed")
	}
}

// GetBookings (GET /api/bookings) returns every reservation, keyed by room
// id.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.BookingSvc.ListAll())
}

// GetRoomReservations (GET /api/rooms/:id/reservations) returns one room's
// reservation history in creation order.
func (ctrl *BookingController) GetRoomReservations(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "id", "must be a numeric room id")
		return
	}
	if _, err := ctrl.RoomSvc.Get(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.BookingSvc.ReservationsFor(id))
}
