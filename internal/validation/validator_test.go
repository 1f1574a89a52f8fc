package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  signup
		fields []string
	}{
		{name: "valid", input: signup{Username: "alice", Email: "alice@example.com"}},
		{name: "valid admin", input: signup{Username: "root", Email: "root@example.com", Role: "admin"}},
		{name: "missing username", input: signup{Email: "a@example.com"}, fields: []string{"username"}},
		{name: "bad email and role", input: signup{Username: "bob", Email: "nope", Role: "owner"}, fields: []string{"email", "role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestStruct_Message(t *testing.T) {
	err := Struct(signup{Username: "al", Email: "al@example.com"})
	require.Error(t, err)
	assert.Equal(t, "username must be at least 3", err.Error())
}
