package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat é retornado para arquivos que não são .json nem .csv
	ErrUnsupportedFormat = errors.New("only JSON and CSV files are supported")
	// ErrInvalidDataset é a causa de todos os erros de conteúdo do arquivo
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrUnknownSample é retornado para nomes de dataset de exemplo desconhecidos
	ErrUnknownSample = errors.New("unknown sample dataset")
)

// RecordError aponta o registro do arquivo que falhou, contando a partir de 1
type RecordError struct {
	Record int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Record, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrInvalidDataset)
func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidDataset
}
