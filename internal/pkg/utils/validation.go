package utils

import (
	"denials-tracker-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("denial_status", validateDenialStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDenialStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.DenialStatusDenied,
		constvars.DenialStatusAppealed,
		constvars.DenialStatusPaid,
		constvars.DenialStatusWriteOff,
		constvars.DenialStatusOther:
		return true
	}
	return false
}
