package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotConfigured      = "NOT_CONFIGURED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotConfigured     = NewDomainError(ErrCodeNotConfigured, "Store is not configured")
	ErrProductNotFound   = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrAccountNotFound   = NewDomainError(ErrCodeNotFound, "No account registered for this email")
	ErrOrderNotFound     = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrEmailTaken        = NewDomainError(ErrCodeConflict, "An account with this email already exists")
	ErrInvalidEmail      = NewDomainError(ErrCodeInvalidInput, "Email address is not valid")
	ErrNameRequired      = NewDomainError(ErrCodeInvalidInput, "Name is required")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidInput, "Quantity must be between 1 and 2147483647")
	ErrEmptyCart         = NewDomainError(ErrCodeInvalidInput, "Cannot create an order from an empty cart")
	ErrShippingRequired  = NewDomainError(ErrCodeInvalidInput, "Shipping name, address, city and zip are required")
	ErrInvalidURL        = NewDomainError(ErrCodeInvalidInput, "Base URL must be an absolute http or https URL")
	ErrGuestCheckout     = NewDomainError(ErrCodeUnauthorised, "Checkout requires a logged-in account")
	ErrSessionRequired   = NewDomainError(ErrCodeInvalidInput, "Session key is required")
	ErrInvalidSessionKey = NewDomainError(ErrCodeInvalidInput, "Session key must be a UUID")
	ErrLoginInProgress   = NewDomainError(ErrCodeConflict, "A login for this session is already in progress")
)

// PersistenceError wraps a failure of the backing store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError unless it already carries a domain error.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// Code classifies err into one of the API error codes.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return ErrCodePersistenceFailure
	}
	return ErrCodeInternalError
}
