package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	manager := "manager"

	token, expiresAt, err := svc.GenerateAccessToken(Claims{
		UserID:    "u1",
		StationID: "s1",
		Name:      "Ravi",
		Role:      "worker",
		Position:  &manager,
	})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	c, ok := ClaimsFromMap(claims)
	require.True(t, ok)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "s1", c.StationID)
	assert.Equal(t, "worker", c.Role)
	require.NotNil(t, c.Position)
	assert.Equal(t, "manager", *c.Position)
}

func TestClaimsFromMap_Missing(t *testing.T) {
	_, ok := ClaimsFromMap(map[string]interface{}{"user_id": "u1", "role": "admin"})
	assert.False(t, ok)

	c, ok := ClaimsFromMap(map[string]interface{}{"user_id": "u1", "station_id": "s1", "role": "admin", "position": nil})
	require.True(t, ok)
	assert.Nil(t, c.Position)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.Error(t, err)

	ctx := ContextWithClaims(context.Background(), Claims{UserID: "u1", StationID: "s1", Role: "admin"})
	c, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", c.Role)
	assert.Nil(t, c.Position)
}
