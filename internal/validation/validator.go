// Package validation checks request forms with go-playground/validator,
// using JSON field names in messages. The console validates before sending
// and the reference server validates on receipt.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/go-playground/validator/v10"
)

// Error is a rejected form. It matches common.ErrValidation.
type Error struct {
	Message string
	Fields  map[string]string
}

// NewError builds an Error with a top-level message and no field details.
func NewError(msg string) *Error {
	return &Error{Message: msg}
}

func (e *Error) Error() string {
	return "validation failed: " + e.UserMessage()
}

func (e *Error) Is(target error) bool { return target == common.ErrValidation }

func (e *Error) UserMessage() string {
	parts := make([]string, 0, 1+len(e.Fields))
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		parts = append(parts, n+" "+e.Fields[n])
	}
	return strings.Join(parts, "; ")
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate returns nil or an *Error describing every failing field.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = friendlyMessage(fe)
	}
	return &Error{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "eqfield":
		return "must match " + strings.ToLower(e.Param())
	case "gt":
		return "must be greater than " + e.Param()
	default:
		return "is invalid"
	}
}
