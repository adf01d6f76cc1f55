// File: internal/user/model.go
package user

import (
	"firebase.google.com/go/v4/auth"
)

// UserProfile is the slice of the identity provider's user record this API
// exposes. Nothing here is persisted; profiles are read or updated on demand.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// ToProfile maps a provider record onto the lookup response shape.
func ToProfile(record *auth.UserRecord) UserProfile {
	return UserProfile{
		ID:    record.UID,
		Email: record.Email,
		Name:  record.DisplayName,
	}
}

// ToProfileWithPhone maps a provider record onto the update response shape,
// which additionally echoes the phone number.
func ToProfileWithPhone(record *auth.UserRecord) UserProfile {
	p := ToProfile(record)
	p.Phone = record.PhoneNumber
	return p
}

// LookupUIDRequest asks for a user by provider UID.
type LookupUIDRequest struct {
	UID string `json:"uid" binding:"required"`
}

// LookupEmailRequest asks for a user by email address.
type LookupEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LookupPhoneRequest asks for a user by phone number (E.164).
type LookupPhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// UpdatePhoneRequest sets the phone number on an existing user.
type UpdatePhoneRequest struct {
	UID   string `json:"uid" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}
