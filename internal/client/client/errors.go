package client

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrijs2005/youquote/internal/common"
)

// Failure taxonomy. Match with errors.Is.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = common.ErrValidation
	ErrNotFound     = errors.New("not found")
	ErrUnexpected   = errors.New("unexpected server error")
)

// Kind classifies a failed API call.
type Kind int

const (
	KindUnexpected Kind = iota
	KindTransport
	KindAuthorization
	KindValidation
	KindNotFound
)

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrUnavailable
	case KindAuthorization:
		return ErrUnauthorized
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrUnexpected
	}
}

// KindForStatus maps an HTTP status to a failure kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthorization
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound, http.StatusGone:
		return KindNotFound
	default:
		return KindUnexpected
	}
}

// APIError is a failed call to the remote store.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.sentinel().Error())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// UserMessage builds the text shown to the user from whatever the server
// supplied, falling back to a generic sentence per kind.
func (e *APIError) UserMessage() string {
	parts := make([]string, 0, 1+len(e.Fields))
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		if msgs := e.Fields[f]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(msgs, ", ")))
		}
	}

	if len(parts) > 0 {
		return strings.Join(parts, "; ")
	}
	return genericMessage(e.Kind)
}

func genericMessage(k Kind) string {
	switch k {
	case KindTransport:
		return "Could not reach the server. Please try again."
	case KindAuthorization:
		return "You are not allowed to do that. Please log in with an account that has access."
	case KindValidation:
		return "The request was rejected. Please check the entered data."
	case KindNotFound:
		return "The requested item no longer exists."
	default:
		return "An error occurred. Please try again."
	}
}

// UserMessage returns the single user-visible message for a failed
// operation.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}

	switch {
	case errors.Is(err, common.ErrForbidden):
		return genericMessage(KindAuthorization)
	case errors.Is(err, common.ErrorInvalidRole):
		return "Unknown role. Use one of: user, moderator, admin."
	case errors.Is(err, ErrUnavailable):
		return genericMessage(KindTransport)
	default:
		return genericMessage(KindUnexpected)
	}
}
