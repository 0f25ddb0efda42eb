package services

import (
	"testing"

	"inkwell/app/repositories/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	svc := NewUserService(mock.NewUserRepository(), testSecret)

	t.Run("valid registration", func(t *testing.T) {
		user, err := svc.Register("alice", "Alice Liddell", "wonderland")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.Password)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register("alice", "Other Alice", "password")
		assert.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register("bob", "Bob", "abc")
		assert.Error(t, err)
	})

	t.Run("short username", func(t *testing.T) {
		_, err := svc.Register("ab", "Bob", "password")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc := NewUserService(mock.NewUserRepository(), testSecret)

	registered, err := svc.Register("alice", "Alice Liddell", "wonderland")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login("alice", "wonderland")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Empty(t, user.Password)

		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, registered.ID, claims["user_id"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("alice", "not-wonderland")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := svc.Login("nobody", "wonderland")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetAndListUsers(t *testing.T) {
	svc := NewUserService(mock.NewUserRepository(), testSecret)

	alice, err := svc.Register("alice", "Alice", "password")
	require.NoError(t, err)
	_, err = svc.Register("bob", "Bob", "password")
	require.NoError(t, err)

	got, err := svc.GetUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Empty(t, got.Password)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
