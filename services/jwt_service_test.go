package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, err := svc.GenerateAdminJWT("018d6cc9-94b0-450f-8ce3-a7892c1752c7", "admin@cafemenu.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "018d6cc9-94b0-450f-8ce3-a7892c1752c7", claims.AdminID)
	assert.Equal(t, "admin@cafemenu.com", claims.Email)
	assert.Equal(t, "cafe-menu-digital", claims.Issuer)
}

func TestVerifyAdminJWTWrongSecret(t *testing.T) {
	signer := &JWTService{secretKey: "secret-a"}
	verifier := &JWTService{secretKey: "secret-b"}

	token, err := signer.GenerateAdminJWT("some-id", "admin@cafemenu.com")
	require.NoError(t, err)

	_, err = verifier.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyAdminJWTGarbage(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}
	_, err := svc.VerifyAdminJWT("not-a-token")
	assert.Error(t, err)
}

func TestGenerateAdminJWTRequiresIdentity(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.GenerateAdminJWT("", "admin@cafemenu.com")
	assert.Error(t, err)

	_, err = svc.GenerateAdminJWT("some-id", "")
	assert.Error(t, err)
}

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
	assert.NoError(t, InitJWTService("test-secret"))
}
