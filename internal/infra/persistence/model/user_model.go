// Package model contains the GORM persistence models mirroring the database
// schema. They are kept separate from domain entities so gorm tags and FK
// plumbing never leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(200);unique;not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Company      string    `gorm:"type:varchar(90)"`
	Position     string    `gorm:"type:varchar(40)"`
	Role         string    `gorm:"type:varchar(5);not null;default:'buyer'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Active       bool      `gorm:"not null;default:false"`
	AvatarPath   string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Contacts      []ContactModel           `gorm:"foreignKey:UserID"`
	Confirmations []EmailConfirmationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmailConfirmationModel mirrors the 'email_confirmations' table.
type EmailConfirmationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Key       string    `gorm:"type:varchar(64);unique;not null;index"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (EmailConfirmationModel) TableName() string {
	return "email_confirmations"
}
