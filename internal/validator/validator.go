// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("staff_role", validateStaffRole)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("tab_mode", validateTabMode)
	}
}

func validateStaffRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Administrator", "Staff":
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DEBIT", "CREDIT":
		return true
	}
	return false
}

func validateTabMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "RECENT", "ALL", "ACCOUNTS", "LOGS":
		return true
	}
	return false
}
