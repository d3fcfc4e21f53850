package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() models.JWTConfig {
	return models.JWTConfig{Secret: "test-secret-key-for-jwt-signing", Expiration: 60, Issuer: "ledger-test"}
}

func TestGenerateAndValidateToken(t *testing.T) {
	id := uuid.New()

	token, expiresAt, err := GenerateToken(id, "admin@example.com", models.RoleAdmin, testConfig())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := ValidateToken(token, testConfig().Secret)
	require.NoError(t, err)
	assert.Equal(t, id, principal.ID)
	assert.Equal(t, models.RoleAdmin, principal.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := testConfig()
	valid, _, err := GenerateToken(uuid.New(), "a@example.com", models.RoleRegular, cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -1
	expired, _, err := GenerateToken(uuid.New(), "a@example.com", models.RoleRegular, expiredCfg)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: uuid.NewString(), Role: "ROOT"}).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	badID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "42", Role: "REGULAR"}).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.NewString(), Role: "ADMIN"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, cfg.Secret},
		{"unknown role", badRole, cfg.Secret},
		{"user id not uuid", badID, cfg.Secret},
		{"alg none", unsigned, cfg.Secret},
		{"garbage", "not.a.token", cfg.Secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, principal)
		})
	}
}
