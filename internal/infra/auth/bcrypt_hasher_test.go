package auth

import (
	"strings"
	"testing"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 4}, // MinCost keeps tests fast
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := newTestHasher(nil)

	// Only the length bounds apply without a strength config
	assert.NoError(t, hasher.ValidatePasswordStrength("password"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 73)))
}

func TestBcryptHasher_ValidatePasswordStrength_FullPolicy(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:        10,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	weakPasswords := []string{
		"Sh0rt!",       // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password1234", // No special characters
	}

	for _, weak := range weakPasswords {
		err := hasher.ValidatePasswordStrength(weak)
		assert.Error(t, err, "Expected error for weak password: %s", weak)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
	}

	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "Expected no error for valid password: %s", password)
	}
}
