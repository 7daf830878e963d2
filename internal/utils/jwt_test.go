package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(7, "priya@example.com", "Priya Sharma", "EMP-07", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "Priya Sharma", claims.FullName)
	assert.Equal(t, "EMP-07", claims.EmployeeID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT(1, "a@b.c", "A", "", "staff")
	require.NoError(t, err)

	InitJWT("secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
