package validator

import (
	"strings"
	"testing"

	domainerrors "account/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string  `json:"name" validate:"max=5"`
	Email *string `json:"email,omitempty" validate:"omitempty,max=8"`
	Token string  `json:"-" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleRequest{Name: "abc", Token: "x"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		long := strings.Repeat("a", 9)
		err := v.Validate(&sampleRequest{Name: "abcdefg", Email: &long, Token: "x"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, map[string]string{
			"name":  "must be at most 5 characters",
			"email": "must be at most 8 characters",
		}, appErr.Details())
	})

	t.Run("not a struct", func(t *testing.T) {
		err := v.Validate("plain string")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
