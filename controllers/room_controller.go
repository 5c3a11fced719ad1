package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-engine/models"
	"hotel-engine/services"
	"hotel-engine/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// CreateRoomRequest registers one room. BaseRate is a pointer so an
// explicit 0 survives the required check.
type CreateRoomRequest struct {
	Category string   `json:"category" binding:"required,roomcategory"`
	BaseRate *float64 `json:"baseRate" binding:"required"`
}

// CreateRoom (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload: "+err.Error())
		return
	}

	category, err := models.ParseRoomCategory(req.Category)
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "category", err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Register(category, *req.BaseRate)
	if err != nil {
		if errors.Is(err, services.ErrNegativeRate) {
			utils.JSONFieldError(c, http.StatusBadRequest, "baseRate", err.Error())
			return
		}
		log.Printf("room registration failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to register room")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GetRooms (GET /api/rooms) lists the rooms still available, in
// registration order.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomSvc.ListAvailable())
}
