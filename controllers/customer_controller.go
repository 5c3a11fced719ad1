package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-engine/models"
	"hotel-engine/services"
	"hotel-engine/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	VIP        bool   `json:"vip"`
}

// CreateCustomer (POST /api/customers). Field validation happens in the
// registry; a failure names the offending field and nothing is stored.
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	customer, err := ctrl.CustomerSvc.Register(req.Name, req.Email, req.NationalID, req.VIP)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONFieldError(c, http.StatusBadRequest, vErr.Field, vErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register customer")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetCustomers (GET /api/customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.CustomerSvc.List())
}
