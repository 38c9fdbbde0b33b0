package profile

import (
	domain "elite-paisa-backend/internal/domain/profile"
)

type UpsertInput struct {
	FullName          string              `json:"fullName" validate:"required"`
	PanNo             string              `json:"panNo" validate:"required,pan"`
	AdharNo           string              `json:"adharNo" validate:"required,aadhaar12"`
	Pincode           string              `json:"pincode" validate:"required,pincode6"`
	PhoneNo           string              `json:"phoneNo" validate:"required,phone10"`
	PhoneNo2          string              `json:"phoneNo2" validate:"omitempty,phone10"`
	Email             string              `json:"email" validate:"omitempty,email"`
	Address           string              `json:"address" validate:"required"`
	Age               int                 `json:"age" validate:"required,gte=18,lte=100"`
	EmploymentDetails string              `json:"employmentDetails"`
	BankDetails       []domain.BankDetail `json:"bankDetails"`
}
