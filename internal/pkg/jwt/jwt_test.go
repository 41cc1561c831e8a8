package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	employeeID := "emp-42"

	token, expiresAt, err := svc.GenerateAccessToken("user-7", &employeeID, user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims[ClaimUserID])
	assert.Equal(t, "emp-42", claims[ClaimEmployeeID])
	assert.Equal(t, "manager", claims[ClaimRole])
	assert.Equal(t, TokenTypeAccess, claims[ClaimType])
}

func TestJWTService_GenerateAccessToken_WithoutEmployee(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, _, err := svc.GenerateAccessToken("user-7", nil, user.RoleManager)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	v, _ := decoded.Get(ClaimEmployeeID)
	assert.Nil(t, v)
}

func TestJWTService_GenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-7", nil, user.RoleEmployee)
	assert.Error(t, err)
}
