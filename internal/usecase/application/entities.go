package application

import (
	domain "elite-paisa-backend/internal/domain/application"
)

type ApplyInput struct {
	LoanTypeID    string           `json:"loanTypeId"`
	LoanAmount    float64          `json:"loanAmount"`
	Tenure        int              `json:"tenure"`
	Purpose       string           `json:"purpose"`
	MonthlyIncome float64          `json:"monthlyIncome"`
	ExistingEMI   float64          `json:"existingEMI"`
	CreditScore   int              `json:"creditScore"`
	Documents     domain.Documents `json:"documents"`
}

type ListInput struct {
	Status          string
	LoanTypeID      string
	LoanSubcategory string
}

// Summaries mirror the association fields the original API exposed on an
// application, trimmed to what the caller is entitled to see.

type ApplicantSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phoneNo,omitempty"`
}

type ProfileSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	PanNo    string `json:"panNo,omitempty"`
	AdharNo  string `json:"adharNo,omitempty"`
}

type LoanTypeSummary struct {
	ID              string  `json:"id"`
	LoanName        string  `json:"loanName"`
	LoanCategory    string  `json:"loanCategory"`
	LoanSubcategory string  `json:"loanSubcategory"`
	MinAmount       float64 `json:"minAmount,omitempty"`
	MaxAmount       float64 `json:"maxAmount,omitempty"`
}

// Detail is an application enriched with its related entity summaries.
type Detail struct {
	domain.LoanApplication
	Applicant *ApplicantSummary `json:"applicant,omitempty"`
	Profile   *ProfileSummary   `json:"profile,omitempty"`
	LoanType  *LoanTypeSummary  `json:"loanType,omitempty"`
}
