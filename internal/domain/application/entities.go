package application

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDisbursed:
		return true
	}
	return false
}

// Documents holds storage URLs previously obtained through the document
// upload endpoint. Upload and attach are two separate phases; an uploaded
// URL that is never attached stays orphaned in storage.
type Documents struct {
	Pan           string `json:"pan,omitempty"`
	Aadhaar       string `json:"aadhaar,omitempty"`
	BankStatement string `json:"bankStatement,omitempty"`
	SalarySlip    string `json:"salarySlip,omitempty"`
}

// LoanApplication is never deleted; the row doubles as the audit trail.
// AuthID is immutable after creation.
type LoanApplication struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID     string    `gorm:"size:32;uniqueIndex:ux_loan_applications_application_id" json:"id"`
	AuthID            string    `gorm:"size:32;index:idx_loan_applications_auth_id" json:"authId"`
	ProfileID         string    `gorm:"size:32" json:"profileId"`
	LoanTypeID        string    `gorm:"size:32;index:idx_loan_applications_loan_type_id" json:"loanTypeId"`
	LoanAmount        float64   `gorm:"type:decimal(18,2)" json:"loanAmount"`
	TenureMonths      int       `gorm:"column:tenure_months" json:"tenure"`
	Purpose           string    `gorm:"type:text" json:"purpose,omitempty"`
	MonthlyIncome     float64   `gorm:"type:decimal(18,2)" json:"monthlyIncome,omitempty"`
	ExistingEMI       float64   `gorm:"type:decimal(18,2);default:0" json:"existingEMI"`
	CreditScore       int       `json:"creditScore,omitempty"`
	Documents         Documents `gorm:"serializer:json;type:json" json:"documents"`
	ApplicationStatus Status    `gorm:"type:enum('pending','approved','rejected','disbursed');default:'pending';index:idx_loan_applications_status" json:"applicationStatus"`
	AdminRemarks      string    `gorm:"type:text" json:"adminRemarks,omitempty"`
	AppliedAt         time.Time `gorm:"index:idx_loan_applications_applied_at,sort:desc" json:"appliedAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
