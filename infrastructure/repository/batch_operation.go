package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/ivstraffic/batch-operations-api/infrastructure/database/postgres"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
)

const batchOperationsTable = "batch_operations"

var batchOperationColumns = []string{
	"id", "name", "description", "operation_type", "status",
	"total_items", "processed_items", "success_items", "failed_items",
	"created_at", "approved_at", "executed_at", "completed_at", "rolled_back_at",
}

type BatchOperationRepository interface {
	Create(tx *sql.Tx, batch *domain.BatchOperation) error
	GetByID(batchID string) (*domain.BatchOperation, error)
	List(status *domain.BatchOperationStatus) ([]*domain.BatchOperation, error)
	UpdateDetails(request *domain.UpdateBatchOperationRequest) error
	// TransitionStatus é o compare-and-swap que serializa as transições de
	// status: a atualização só acontece se o status atual for `from`.
	// Retorna false quando nenhuma linha foi afetada.
	TransitionStatus(batchID string, from, to domain.BatchOperationStatus, stampColumn string) (bool, error)
	UpdateCounters(batchID string, processed, success, failed int) error
	FinishExecution(batchID string, status domain.BatchOperationStatus, processed, success, failed int) (bool, error)
}

type batchOperationRepository struct {
	conn *postgres.Connection
}

func NewBatchOperationRepository(conn *postgres.Connection) BatchOperationRepository {
	return &batchOperationRepository{
		conn: conn,
	}
}

func (r *batchOperationRepository) Create(tx *sql.Tx, batch *domain.BatchOperation) error {
	if tx == nil {
		return errors.New("a criação do lote exige uma transação")
	}

	sqlQuery, args, err := squirrel.
		Insert(batchOperationsTable).
		Columns("id", "name", "description", "operation_type", "status", "total_items", "created_at").
		Values(
			batch.ID,
			batch.Name,
			batch.Description,
			batch.OperationType,
			batch.Status,
			batch.TotalItems,
			batch.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *batchOperationRepository) GetByID(batchID string) (*domain.BatchOperation, error) {
	sqlQuery, args, err := squirrel.
		Select(batchOperationColumns...).
		From(batchOperationsTable).
		Where(squirrel.Eq{"id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)

	batch, err := r.deserializeBatch(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return batch, nil
}

func (r *batchOperationRepository) List(status *domain.BatchOperationStatus) ([]*domain.BatchOperation, error) {
	queryBuilder := squirrel.
		Select(batchOperationColumns...).
		From(batchOperationsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *status})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.BatchOperation, 0)

	for rows.Next() {
		batch, err := r.deserializeBatch(rows.Scan)
		if err != nil {
			return nil, err
		}

		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return batches, nil
}

func (r *batchOperationRepository) UpdateDetails(request *domain.UpdateBatchOperationRequest) error {
	if request.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(batchOperationsTable).
		Where(squirrel.Eq{"id": request.ID, "status": domain.BatchStatusPending}).
		PlaceholderFormat(squirrel.Dollar)

	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.Description != nil {
		queryBuilder = queryBuilder.Set("description", *request.Description)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("batch operation not found or not pending")
	}

	return nil
}

func (r *batchOperationRepository) TransitionStatus(batchID string, from, to domain.BatchOperationStatus, stampColumn string) (bool, error) {
	queryBuilder := squirrel.
		Update(batchOperationsTable).
		Set("status", to).
		Where(squirrel.Eq{"id": batchID, "status": from}).
		PlaceholderFormat(squirrel.Dollar)

	if stampColumn != "" {
		queryBuilder = queryBuilder.Set(stampColumn, time.Now())
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *batchOperationRepository) UpdateCounters(batchID string, processed, success, failed int) error {
	sqlQuery, args, err := squirrel.
		Update(batchOperationsTable).
		Set("processed_items", processed).
		Set("success_items", success).
		Set("failed_items", failed).
		Where(squirrel.Eq{"id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// FinishExecution grava o status terminal e os contadores finais, condicionado
// ao lote ainda estar em executing
func (r *batchOperationRepository) FinishExecution(batchID string, status domain.BatchOperationStatus, processed, success, failed int) (bool, error) {
	sqlQuery, args, err := squirrel.
		Update(batchOperationsTable).
		Set("status", status).
		Set("processed_items", processed).
		Set("success_items", success).
		Set("failed_items", failed).
		Set("completed_at", time.Now()).
		Where(squirrel.Eq{"id": batchID, "status": domain.BatchStatusExecuting}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *batchOperationRepository) deserializeBatch(scan func(dest ...any) error) (*domain.BatchOperation, error) {
	batch := &domain.BatchOperation{}

	if err := scan(
		&batch.ID,
		&batch.Name,
		&batch.Description,
		&batch.OperationType,
		&batch.Status,
		&batch.TotalItems,
		&batch.ProcessedItems,
		&batch.SuccessItems,
		&batch.FailedItems,
		&batch.CreatedAt,
		&batch.ApprovedAt,
		&batch.ExecutedAt,
		&batch.CompletedAt,
		&batch.RolledBackAt,
	); err != nil {
		return nil, err
	}

	return batch, nil
}
