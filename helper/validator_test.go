package helper

import (
	"testing"

	"campus-rewards-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{
		Name:       "Ada Lovelace",
		Email:      "ada@example.edu",
		Password:   "secret1",
		Department: "computer-science",
	}
	assert.NoError(t, ValidateStruct(valid))

	invalid := valid
	invalid.Email = "not-an-email"
	err := ValidateStruct(invalid)
	require.Error(t, err)
	assert.Contains(t, FormatValidationErrors(err), "Email")
}

func TestFormatValidationErrorsJoinsFields(t *testing.T) {
	err := ValidateStruct(models.RegisterRequest{})
	require.Error(t, err)

	msg := FormatValidationErrors(err)
	assert.Contains(t, msg, "Name")
	assert.Contains(t, msg, "required")
	assert.Contains(t, msg, ";")
}

func TestValidateAwardRequest(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.AwardPointsRequest{
		UserID: "7ed99bd0-87b2-4dbb-a97b-596c3f29c49b",
		Points: 150,
	}))
	assert.Error(t, ValidateStruct(models.AwardPointsRequest{
		UserID: "not-a-uuid",
		Points: 150,
	}))
	assert.Error(t, ValidateStruct(models.AwardPointsRequest{
		UserID: "7ed99bd0-87b2-4dbb-a97b-596c3f29c49b",
		Points: 1001,
	}))
}
