package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService("test-jwt-secret", "admin", string(hash))

	token, err := svc.Login("admin", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("admin", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("otro", "secret")
	assert.Error(t, err)
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	svc := NewAuthService("test-jwt-secret", "admin", "")
	_, err := svc.Login("admin", "lo-que-sea")
	assert.Error(t, err)
}
