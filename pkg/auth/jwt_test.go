package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiegL/ostia-visitas-report/internal/model"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(JWTConfig{Secret: "test-secret", ExpiryHours: 1})

	minister := &model.Minister{
		ID:       42,
		Username: "pedro",
		Role:     model.MinisterRoleUser,
	}

	token, err := svc.Generate("session-1", minister)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.MinisterID)
	assert.Equal(t, "pedro", claims.Username)
	assert.Equal(t, model.MinisterRoleUser, claims.Role)
	assert.Equal(t, "session-1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	minister := &model.Minister{ID: 1, Username: "ana", Role: model.MinisterRoleAdmin}

	token, err := NewJWTService(JWTConfig{Secret: "one"}).Generate("s", minister)
	require.NoError(t, err)

	_, err = NewJWTService(JWTConfig{Secret: "two"}).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService(JWTConfig{Secret: "test-secret"})
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
