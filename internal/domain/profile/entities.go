package profile

import "time"

type BankDetail struct {
	BankName          string `json:"bankName"`
	AccountNo         string `json:"accountNo"`
	AccountHolderName string `json:"accountHolderName"`
	BankBranch        string `json:"bankBranch"`
	IFSCCode          string `json:"ifscCode"`
}

// Profile is the KYC record for one identity. The unique index on auth_id is
// the authority for the one-profile-per-identity invariant; the usecase's
// find-then-write path is a convenience, not the correctness mechanism.
type Profile struct {
	ID                uint64       `gorm:"primaryKey;column:id" json:"-"`
	ProfileID         string       `gorm:"size:32;uniqueIndex:ux_profiles_profile_id" json:"id"`
	AuthID            string       `gorm:"size:32;uniqueIndex:ux_profiles_auth_id" json:"authId"`
	FullName          string       `gorm:"size:255" json:"fullName"`
	PanNo             string       `gorm:"size:10" json:"panNo"`
	AdharNo           string       `gorm:"size:12" json:"adharNo"`
	Pincode           string       `gorm:"size:6" json:"pincode"`
	PhoneNo           string       `gorm:"size:10" json:"phoneNo"`
	PhoneNo2          string       `gorm:"size:10" json:"phoneNo2,omitempty"`
	Email             string       `gorm:"size:255" json:"email"`
	Address           string       `gorm:"type:text" json:"address"`
	Age               int          `json:"age"`
	EmploymentDetails string       `gorm:"type:text" json:"employmentDetails,omitempty"`
	BankDetails       []BankDetail `gorm:"serializer:json;type:json" json:"bankDetails"`
	ProfilePic        string       `gorm:"type:text" json:"profilePic,omitempty"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }
