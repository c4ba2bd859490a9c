package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *Error
	require.ErrorAs(t, err, &verr)
	return verr.UserMessage()
}

func TestValidate_LoginForm(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(models.LoginForm{Email: "admin@example.com", Password: "x"}))

	err := v.Validate(models.LoginForm{Email: "not-an-email"})
	require.ErrorIs(t, err, common.ErrValidation)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "is required", verr.Fields["password"])
}

func TestValidate_RegisterForm(t *testing.T) {
	v := New()

	ok := models.RegisterForm{Name: "Jane", Email: "jane@example.com", Password: "password1", PasswordConfirmation: "password1"}
	require.NoError(t, v.Validate(ok))

	short := ok
	short.Password = "short"
	short.PasswordConfirmation = "short"
	err := v.Validate(short)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "password must be at least 8 characters", userMessage(t, err))
}

func TestValidate_RoleChange(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(models.RoleChange{Role: models.RoleModerator}))

	err := v.Validate(models.RoleChange{Role: "root"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, userMessage(t, err), "role must be one of: user moderator admin")
}

func TestError_UserMessageOrdersFields(t *testing.T) {
	e := &Error{Message: "Fix the form", Fields: map[string]string{"b": "is bad", "a": "is worse"}}
	assert.Equal(t, "Fix the form; a is worse; b is bad", e.UserMessage())
	assert.Equal(t, "Passwords do not match!", NewError("Passwords do not match!").UserMessage())
}
