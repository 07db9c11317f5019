package strava

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrParameterMissing indicates a required client setting was not configured
	ErrParameterMissing = errors.New("required parameter missing")
	// ErrNotAuthorized indicates the OAuth redirect did not carry an authorization code
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotAuthenticated indicates an authenticated call was made without an access token
	ErrNotAuthenticated = errors.New("not authenticated: no access token")
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	// KindTransport is a network level failure or unreadable response.
	KindTransport ErrorKind = iota + 1
	// KindValidation is a non-2xx response from the API.
	KindValidation
	// KindDecode is a 2xx response whose body did not match the expected shape.
	KindDecode
	// KindConfiguration is a missing client setting.
	KindConfiguration
	// KindAuthorization is a redirect without an authorization code.
	KindAuthorization
	// KindNotAuthenticated is a call that needs a token when none is stored.
	KindNotAuthenticated
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	case KindDecode:
		return "decode"
	case KindConfiguration:
		return "configuration"
	case KindAuthorization:
		return "authorization"
	case KindNotAuthenticated:
		return "not_authenticated"
	default:
		return "unknown"
	}
}

// Error is the failure carried by every Result and returned by every client call.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       string
	Fault      *Fault
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("strava: status %d: %s", e.StatusCode, e.Message)
	}
	return "strava: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Fault is the error document Strava returns with 4xx and 5xx responses.
type Fault struct {
	Message string       `json:"message"`
	Errors  []FaultError `json:"errors"`
}

// FaultError is one entry of a Fault.
type FaultError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
}

func (f *Fault) String() string {
	if len(f.Errors) == 0 {
		return f.Message
	}
	parts := make([]string, 0, len(f.Errors))
	for _, fe := range f.Errors {
		parts = append(parts, fmt.Sprintf("%s.%s %s", fe.Resource, fe.Field, fe.Code))
	}
	return fmt.Sprintf("%s (%s)", f.Message, strings.Join(parts, ", "))
}

func missingParameter(name string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: name + " is required",
		Err:     ErrParameterMissing,
	}
}

func notAuthorized(msg string) *Error {
	return &Error{
		Kind:    KindAuthorization,
		Message: msg,
		Err:     ErrNotAuthorized,
	}
}

func notAuthenticated() *Error {
	return &Error{
		Kind:    KindNotAuthenticated,
		Message: "no access token, authorize first",
		Err:     ErrNotAuthenticated,
	}
}

// KindOf returns the kind of a strava error, or 0 for foreign errors.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
