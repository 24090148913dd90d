package entity

import (
	"time"
)

// User is the credential record plus the profile fields of a school member.
// Password holds the bcrypt hash, never the plain text.
// Username is the login handle and does not change after creation.
type User struct {
	ID         int64
	Username   string
	Password   string
	ProfilePic string
	Email      string
	FirstName  string
	LastName   string
	MobileNo   string
	Address    string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
