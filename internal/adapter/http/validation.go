package http

import (
	"regexp"

	"elite-paisa-backend/internal/domain/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	rePAN     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	reDigits  = regexp.MustCompile(`^[0-9]+$`)
	rePhone10 = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return rePAN.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("aadhaar12", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 12 && reDigits.MatchString(s)
	})
	_ = v.RegisterValidation("pincode6", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 6 && reDigits.MatchString(s)
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return rePhone10.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to the shared field error
// shape with readable messages.
func ToFieldErrors(err error) []apperr.FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperr.FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]apperr.FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, apperr.FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, apperr.FieldError{Field: field, Message: "must be a valid email address"})
		case "pan":
			out = append(out, apperr.FieldError{Field: field, Message: "must be a valid PAN (e.g. ABCDE1234F)"})
		case "aadhaar12":
			out = append(out, apperr.FieldError{Field: field, Message: "must be a 12-digit Aadhaar number"})
		case "pincode6":
			out = append(out, apperr.FieldError{Field: field, Message: "must be a 6-digit pincode"})
		case "phone10":
			out = append(out, apperr.FieldError{Field: field, Message: "must be a valid 10-digit mobile number"})
		case "gte":
			out = append(out, apperr.FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, apperr.FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "min":
			out = append(out, apperr.FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		default:
			out = append(out, apperr.FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
