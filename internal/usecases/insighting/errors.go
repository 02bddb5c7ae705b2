package insighting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

var (
	// ErrInvalidEntry é retornado quando o registro não passa na validação
	ErrInvalidEntry = domain.ErrInvalidEntry
	// ErrStorage é a causa de todas as falhas do repositório
	ErrStorage = errors.New("storage operation failed")
)

// StorageError identifica a operação do repositório que falhou
type StorageError struct {
	Op  string
	Err error
}

func newStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

// Unwrap retorna o erro do repositório
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStorage)
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
