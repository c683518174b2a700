package service

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the identity a validated access token carries.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed bearer token for the user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}
