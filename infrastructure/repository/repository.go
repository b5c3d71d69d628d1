package repository

import (
	"context"
	"database/sql"
)

// TransactionRunner é o recorte da conexão que os serviços usam para agrupar
// escritas em uma transação
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
