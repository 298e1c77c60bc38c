package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,max=10"`
	Day   int    `validate:"gte=0,lte=6"`
}

func TestValidate_Passes(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "a@b.test", Name: "Alice", Day: 3})
	assert.NoError(t, err)
}

func TestValidate_Fails(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "not-an-email", Name: "", Day: 9})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["Email"], "valid email")
	assert.Contains(t, formatted["Name"], "required")
	assert.Contains(t, formatted["Day"], "less than or equal to 6")
}
