package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned for unknown product, order or user ids.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when signing up with an email already in use.
	ErrConflict = errors.New("email already registered")
	// ErrUnauthenticated is returned when an operation needs a session and
	// there is none, or when credentials do not match.
	ErrUnauthenticated = errors.New("not signed in")
	// ErrForbidden is returned when the session user lacks admin rights.
	ErrForbidden = errors.New("admin privileges required")
	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")
	// ErrPaymentFailed is the sentinel every PaymentError unwraps to.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrEmptyCart is returned when checking out with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ErrInvalidCredentials is the single failure for sign-in. It does not say
// whether the email or the password was wrong.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthenticated)

// ValidationError carries per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return "validation failed: " + strings.Join(msgs, " ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PaymentError is returned when the processor declines a payment.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string {
	if e.Message == "" {
		return ErrPaymentFailed.Error()
	}
	return e.Message
}

func (e *PaymentError) Unwrap() error { return ErrPaymentFailed }

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}
