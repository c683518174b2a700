package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, entity.RoleShop)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleShop, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	svc.accessTTL = -time.Minute

	token, err := svc.GenerateAccessToken(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	other := &config.Config{}
	other.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := otherSvc.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
