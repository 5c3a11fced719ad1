package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-engine/models"
)

// roomcategory restricts a string field to the closed category set, so a
// bad category is rejected during binding instead of falling through to a
// default.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("roomcategory", func(fl validator.FieldLevel) bool {
			return models.RoomCategory(fl.Field().String()).Valid()
		})
	}
}
