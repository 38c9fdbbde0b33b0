package user

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func ValidRole(r Role) bool { return r == RoleClient || r == RoleAdmin }

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"id"`
	FullName     string    `gorm:"size:255" json:"fullName"`
	Email        string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	PhoneNo      string    `gorm:"size:20" json:"phoneNo"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Role         Role      `gorm:"type:enum('client','admin');default:'client'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// Principal is the authenticated identity attached to a request. Role is
// always re-read from the store at request time, never taken from the token.
type Principal struct {
	ID   string
	Role Role
}

func (u *User) Principal() Principal { return Principal{ID: u.UserID, Role: u.Role} }
