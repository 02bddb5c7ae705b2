package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry é a causa de todos os erros de validação de entrada
var ErrInvalidEntry = errors.New("invalid revenue entry")

// ValidationError descreve o campo rejeitado e o motivo
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidEntry)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEntry
}
