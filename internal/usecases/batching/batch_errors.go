package batching

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de operações em lote
var (
	// Erros de validação
	ErrBatchNotFound        = errors.New("batch operation not found")
	ErrEmptyItems           = errors.New("batch operation requires at least one item")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrChangeMismatch       = errors.New("item change does not match the batch operation type")

	// Erros de transição de ciclo de vida
	ErrInvalidTransition           = errors.New("invalid batch status transition")
	ErrConcurrentExecutionRejected = errors.New("batch operation is already mid-transition")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating unique identifier")
)

// BatchError é um erro com contexto adicional para operações em lote
type BatchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	BatchID string // ID do lote envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BatchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BatchError) Unwrap() error {
	return e.Err
}

// NewBatchError cria um novo BatchError
func NewBatchError(err error, code string, details string) *BatchError {
	return &BatchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBatchErrorWithID cria um novo BatchError com ID do lote
func NewBatchErrorWithID(err error, code string, batchID string, details string) *BatchError {
	return &BatchError{
		Err:     err,
		Code:    code,
		BatchID: batchID,
		Details: details,
	}
}
