package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidTransition   = errors.New("invalid shipment status transition")
	ErrIdempotencyConflict = errors.New("settlement for order is already being recorded")
)

// ProviderError: ошибка транспорта или самого курьерского API.
type ProviderError struct {
	Provider  ProviderID
	Code      string
	Message   string
	Retryable bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("courier %s: %s: %s", e.Provider, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryableProviderError достаёт ProviderError из цепочки и возвращает его флаг retryable.
func IsRetryableProviderError(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type StateTransitionError struct {
	From ShipmentStatus
	To   ShipmentStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("shipment status transition %s -> %s is not allowed", e.From, e.To)
}

func (e *StateTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
