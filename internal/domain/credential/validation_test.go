package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNewUser_Valid(t *testing.T) {
	assert.NoError(t, ValidateNewUser("jane doe", "JANE@X.COM", "password123"))
}

func TestValidateNewUser_CollectsEveryField(t *testing.T) {
	err := ValidateNewUser("jo", "not-an-email", "short")
	require.Error(t, err)

	var fields ValidationErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, ValidationErrors{
		"name":     MsgInvalidName,
		"email":    MsgInvalidEmail,
		"password": MsgInvalidPassword,
	}, fields)
	assert.Equal(t,
		"validation failed: email: "+MsgInvalidEmail+"; name: "+MsgInvalidName+"; password: "+MsgInvalidPassword,
		err.Error(),
	)
}

func TestValidationErrors_OrNil(t *testing.T) {
	assert.Nil(t, ValidationErrors{}.OrNil())
	assert.Error(t, ValidationErrors{}.ValidateEmail("bad").OrNil())
}

func TestValidatePassword_TooLong(t *testing.T) {
	long := ""
	for len(long) <= MaxPasswordBytes {
		long += "abcdefgh"
	}

	fields := ValidationErrors{}.ValidatePassword(long)
	assert.Equal(t, MsgPasswordTooLong, fields["password"])
}
