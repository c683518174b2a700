package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table (buyer delivery addresses).
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	City      string    `gorm:"type:varchar(50);not null"`
	Street    string    `gorm:"type:varchar(100);not null"`
	House     string    `gorm:"type:varchar(15)"`
	Structure string    `gorm:"type:varchar(15)"`
	Building  string    `gorm:"type:varchar(15)"`
	Apartment string    `gorm:"type:varchar(15)"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
