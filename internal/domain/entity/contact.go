// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a buyer's delivery address. An order references (not copies) a
// contact at checkout time.
type Contact struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
