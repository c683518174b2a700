// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing one marketplace account.
// The same table backs both buyers and shop owners; Role decides which side
// of the marketplace the account operates on.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as the login identifier.
	FirstName    string
	LastName     string
	Company      string
	Position     string
	Role         Role   // "buyer" or "shop".
	PasswordHash string // bcrypt hash of the password. Never serialized outward.
	Active       bool   // False until the email confirmation token is redeemed.
	AvatarPath   string // Object-store path of the fetched avatar image, empty if none.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display and email templates.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// EmailConfirmation is a one-shot token mailed to a freshly registered user.
// Redeeming it activates the account and deletes the row.
type EmailConfirmation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Key       string // Random hex token, unique across all pending confirmations.
	CreatedAt time.Time
}
