package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	State string `json:"state" validate:"omitempty,is-publish-state"`
	Role  string `json:"role" validate:"omitempty,is-user-role"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{
		Email: "user@test.com",
		Name:  "Ok",
		State: "public",
		Role:  "admin",
	})
	assert.NoError(t, err)
}

// Имена полей в ошибках берутся из json-тегов
func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_Required(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
}

func TestValidate_PublishState(t *testing.T) {
	v := New()

	for _, state := range []string{"private", "public"} {
		err := v.Validate(&sampleDTO{Email: "user@test.com", Name: "Ok", State: state})
		assert.NoError(t, err, state)
	}

	err := v.Validate(&sampleDTO{Email: "user@test.com", Name: "Ok", State: "draft"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be 'private' or 'public'", vErr.Errors["state"])
}

func TestValidate_UserRole(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "user@test.com", Name: "Ok", Role: "superuser"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidationError_Message(t *testing.T) {
	vErr := &ValidationError{Errors: map[string]string{"email": "bad"}}
	assert.Contains(t, vErr.Error(), "email")
	assert.Contains(t, vErr.Error(), "Validation failed")
}
