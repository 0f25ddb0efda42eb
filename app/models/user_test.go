package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name:    "valid user",
			user:    &User{ID: "u1", Username: "alice", Name: "Alice Liddell"},
			wantErr: false,
		},
		{
			name:    "username too short",
			user:    &User{ID: "u1", Username: "al", Name: "Alice Liddell"},
			wantErr: true,
		},
		{
			name:    "missing display name",
			user:    &User{ID: "u1", Username: "alice"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserSanitized(t *testing.T) {
	user := &User{ID: "u1", Username: "alice", Name: "Alice", Password: "$2a$10$hash"}

	clean := user.Sanitized()
	assert.Empty(t, clean.Password)
	assert.Equal(t, "alice", clean.Username)
	// original keeps its hash
	assert.NotEmpty(t, user.Password)
}
