package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGoal         = errors.New("invalid goal")
	ErrInvalidGraphRequest = errors.New("invalid graph request")
	ErrInvalidPeriod       = errors.New("invalid period")
)

// ValidationError carrega o campo rejeitado junto do erro base
type ValidationError struct {
	Err   error
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, field string) *ValidationError {
	return &ValidationError{Err: err, Field: field}
}
