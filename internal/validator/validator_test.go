package validator

import (
	"testing"

	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Password1: "sturdy-pass-9",
		Password2: "sturdy-pass-9",
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	v := New()
	req := validRegisterRequest()
	assert.NoError(t, v.Validate(&req))
}

func TestValidateRegisterRequestFieldErrors(t *testing.T) {
	v := New()

	t.Run("missing username", func(t *testing.T) {
		req := validRegisterRequest()
		req.Username = ""
		err := v.Validate(&req)
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "This field is required", ve.Errors["username"])
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRegisterRequest()
		req.Email = "not-an-email"
		err := v.Validate(&req)
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "Must be a valid email address", ve.Errors["email"])
	})

	t.Run("username with spaces", func(t *testing.T) {
		req := validRegisterRequest()
		req.Username = "has spaces"
		err := v.Validate(&req)
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "username")
	})
}

func TestValidateCreateJobRequest(t *testing.T) {
	v := New()

	req := dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Remote",
		Description:  "Build services",
		Requirements: "Go",
		JobType:      "full_time",
	}
	assert.NoError(t, v.Validate(&req))

	t.Run("invalid job type", func(t *testing.T) {
		bad := req
		bad.JobType = "freelance"
		err := v.Validate(&bad)
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "Must be a valid job type (full_time, part_time, contract, remote)", ve.Errors["job_type"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := v.Validate(&dto.CreateJobRequest{})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		for _, field := range []string{"title", "company", "location", "description", "requirements", "job_type"} {
			assert.Contains(t, ve.Errors, field)
		}
	})
}
