package entity

import (
	"time"
)

// User is a person living at an address.
// AddressID is a plain foreign key and never changes after creation.
type User struct {
	ID        int64     // System-assigned identifier.
	Name      string    // Display name.
	Email     *string   // Optional contact email, unique when present.
	Phone     string    // Contact phone number.
	AddressID int64     // The address this user belongs to.
	CreatedAt time.Time // Timestamp of when this user was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// HasEmail reports whether the user's email is set to email.
func (u *User) HasEmail(email string) bool {
	return u.Email != nil && *u.Email == email
}
