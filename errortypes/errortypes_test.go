package errortypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCode(t *testing.T) {
	tests := []struct {
		description string
		err         error
		wantCode    int
		wantLabel   string
	}{
		{
			description: "invalid settings",
			err:         &InvalidSettings{Message: "bad"},
			wantCode:    InvalidSettingsErrorCode,
			wantLabel:   "invalid_settings",
		},
		{
			description: "cookie not found",
			err:         &CookieNotFound{Message: "missing"},
			wantCode:    CookieNotFoundErrorCode,
			wantLabel:   "cookie_not_found",
		},
		{
			description: "invalid cookie value",
			err:         &InvalidCookieValue{Message: "garbage"},
			wantCode:    InvalidCookieValueErrorCode,
			wantLabel:   "invalid_cookie_value",
		},
		{
			description: "plain error",
			err:         errors.New("plain"),
			wantCode:    UnknownErrorCode,
			wantLabel:   "unknown",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.wantCode, ReadCode(test.err), test.description)
		assert.Equal(t, test.wantLabel, CodeLabel(test.err), test.description)
	}
}

func TestSeverity(t *testing.T) {
	errs := []error{
		&InvalidSettings{Message: "bad"},
		&CookieNotFound{Message: "missing"},
		&InvalidCookieValue{Message: "garbage"},
	}
	for _, err := range errs {
		assert.True(t, IsWarning(err), err.Error())
	}
	assert.False(t, ContainsFatalError(errs))
	assert.True(t, ContainsFatalError(append(errs, errors.New("plain"))))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 4")

	err := error(&InvalidCookieValue{Message: "invalid cookie value: " + cause.Error(), Cause: cause})
	assert.ErrorIs(t, err, cause)

	var target *InvalidCookieValue
	assert.ErrorAs(t, err, &target)
}

func TestAggregateErrors(t *testing.T) {
	assert.Equal(t, "", NewAggregateErrors("parse failed", nil).Error())

	one := NewAggregateErrors("parse failed", []error{errors.New("a")})
	assert.Equal(t, "parse failed (1 error):\n  1: a\n", one.Error())

	two := NewAggregateErrors("parse failed", []error{errors.New("a"), errors.New("b")})
	assert.Equal(t, "parse failed (2 errors):\n  1: a\n  2: b\n", two.Error())
}

func TestAggregateErrorsUnwrap(t *testing.T) {
	missing := &CookieNotFound{Message: "cookie not found: didomi_token"}
	agg := NewAggregateErrors("mapping failed", []error{errors.New("a"), missing})

	var target *CookieNotFound
	assert.ErrorAs(t, agg, &target)
	assert.Same(t, missing, target)
}
