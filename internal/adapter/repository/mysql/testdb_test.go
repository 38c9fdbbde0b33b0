package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-friendly shadow schemas for tests: same tables and columns as the
// domain models, with enum columns relaxed to text.

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	UserID       string    `gorm:"size:32;column:user_id;uniqueIndex"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PhoneNo      string    `gorm:"column:phone_no"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"type:text;column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type profileSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	ProfileID         string    `gorm:"size:32;column:profile_id;uniqueIndex"`
	AuthID            string    `gorm:"size:32;column:auth_id;uniqueIndex"`
	FullName          string    `gorm:"column:full_name"`
	PanNo             string    `gorm:"column:pan_no"`
	AdharNo           string    `gorm:"column:adhar_no"`
	Pincode           string    `gorm:"column:pincode"`
	PhoneNo           string    `gorm:"column:phone_no"`
	PhoneNo2          string    `gorm:"column:phone_no2"`
	Email             string    `gorm:"column:email"`
	Address           string    `gorm:"column:address"`
	Age               int       `gorm:"column:age"`
	EmploymentDetails string    `gorm:"column:employment_details"`
	BankDetails       string    `gorm:"type:text;column:bank_details"`
	ProfilePic        string    `gorm:"column:profile_pic"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (profileSQLite) TableName() string { return "profiles" }

type loanTypeSQLite struct {
	ID                  uint64    `gorm:"primaryKey;column:id"`
	LoanTypeID          string    `gorm:"size:32;column:loan_type_id;uniqueIndex"`
	LoanName            string    `gorm:"column:loan_name"`
	LoanCategory        string    `gorm:"column:loan_category"`
	LoanSubcategory     string    `gorm:"column:loan_subcategory"`
	MinAmount           float64   `gorm:"column:min_amount"`
	MaxAmount           float64   `gorm:"column:max_amount"`
	InterestRateMin     float64   `gorm:"column:interest_rate_min"`
	InterestRateMax     float64   `gorm:"column:interest_rate_max"`
	TenureMinMonths     int       `gorm:"column:tenure_min_months"`
	TenureMaxMonths     int       `gorm:"column:tenure_max_months"`
	ProcessingFee       string    `gorm:"column:processing_fee"`
	EligibilityCriteria string    `gorm:"column:eligibility_criteria"`
	RequiredDocuments   string    `gorm:"type:text;column:required_documents"`
	Status              string    `gorm:"type:text;column:status"`
	CreatedBy           string    `gorm:"column:created_by"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (loanTypeSQLite) TableName() string { return "loan_types" }

type loanApplicationSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	ApplicationID     string    `gorm:"size:32;column:application_id;uniqueIndex"`
	AuthID            string    `gorm:"size:32;column:auth_id"`
	ProfileID         string    `gorm:"size:32;column:profile_id"`
	LoanTypeID        string    `gorm:"size:32;column:loan_type_id"`
	LoanAmount        float64   `gorm:"column:loan_amount"`
	TenureMonths      int       `gorm:"column:tenure_months"`
	Purpose           string    `gorm:"column:purpose"`
	MonthlyIncome     float64   `gorm:"column:monthly_income"`
	ExistingEMI       float64   `gorm:"column:existing_emi"`
	CreditScore       int       `gorm:"column:credit_score"`
	Documents         string    `gorm:"type:text;column:documents"`
	ApplicationStatus string    `gorm:"type:text;column:application_status"`
	AdminRemarks      string    `gorm:"column:admin_remarks"`
	AppliedAt         time.Time `gorm:"column:applied_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (loanApplicationSQLite) TableName() string { return "loan_applications" }

// openTestDB opens an in-memory sqlite DB and migrates the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &profileSQLite{}, &loanTypeSQLite{}, &loanApplicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
