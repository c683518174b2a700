// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength rejects passwords that fail the configured
// requirements. With no strength config only a minimum length of 8 applies.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := 8
	maxLength := 72 // bcrypt truncates beyond 72 bytes

	cfg := h.strength
	if cfg != nil {
		if cfg.MinLength > 0 {
			minLength = cfg.MinLength
		}
		if cfg.MaxLength > 0 && cfg.MaxLength < maxLength {
			maxLength = cfg.MaxLength
		}
	}

	if len(password) < minLength {
		return domainerrors.ErrValidationFailed.WithDetails("password: too short")
	}
	if len(password) > maxLength {
		return domainerrors.ErrValidationFailed.WithDetails("password: too long")
	}

	if cfg == nil {
		return nil
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if cfg.RequireUppercase && !hasUpper {
		return domainerrors.ErrValidationFailed.WithDetails("password: must contain an uppercase letter")
	}
	if cfg.RequireLowercase && !hasLower {
		return domainerrors.ErrValidationFailed.WithDetails("password: must contain a lowercase letter")
	}
	if cfg.RequireNumbers && !hasNumber {
		return domainerrors.ErrValidationFailed.WithDetails("password: must contain a digit")
	}
	if cfg.RequireSpecial && !hasSpecial {
		return domainerrors.ErrValidationFailed.WithDetails("password: must contain a special character")
	}

	return nil
}
