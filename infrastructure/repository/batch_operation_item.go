package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/ivstraffic/batch-operations-api/infrastructure/database/postgres"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
)

const batchItemsTable = "batch_operation_items"

var batchItemColumns = []string{
	"id", "batch_id", "entity_type", "entity_id", "entity_name", "change",
	"status", "error_message", "previous_state", "applied_at", "rolled_back_at", "created_at",
}

type BatchOperationItemRepository interface {
	BulkCreate(tx *sql.Tx, items []*domain.BatchOperationItem) error
	ListByBatchID(batchID string) ([]*domain.BatchOperationItem, error)
	ListByBatchIDAndStatus(batchID string, status domain.BatchItemStatus) ([]*domain.BatchOperationItem, error)
	// SavePreviousState persiste o snapshot antes da tentativa de mutação
	SavePreviousState(itemID string, state json.RawMessage) error
	MarkSuccess(itemID string) error
	MarkFailed(itemID string, errorMessage string) error
	MarkRolledBack(itemID string) error
}

type batchOperationItemRepository struct {
	conn *postgres.Connection
}

func NewBatchOperationItemRepository(conn *postgres.Connection) BatchOperationItemRepository {
	return &batchOperationItemRepository{
		conn: conn,
	}
}

// BulkCreate insere todos os itens do lote em um único statement, dentro da
// mesma transação que cria o agregado
func (r *batchOperationItemRepository) BulkCreate(tx *sql.Tx, items []*domain.BatchOperationItem) error {
	if tx == nil {
		return errors.New("a criação dos itens exige uma transação")
	}

	if len(items) == 0 {
		return errors.New("nenhum item para inserir")
	}

	query := squirrel.StatementBuilder.
		Insert(batchItemsTable).
		Columns("id", "batch_id", "entity_type", "entity_id", "entity_name", "change", "status", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		change, err := json.Marshal(item.Change)
		if err != nil {
			return fmt.Errorf("erro ao serializar a mudança do item %s: %w", item.ID, err)
		}

		query = query.Values(
			item.ID,
			item.BatchID,
			item.EntityType,
			item.EntityID,
			item.EntityName,
			change,
			item.Status,
			item.CreatedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
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

func (r *batchOperationItemRepository) ListByBatchID(batchID string) ([]*domain.BatchOperationItem, error) {
	return r.listItems(squirrel.Eq{"batch_id": batchID})
}

func (r *batchOperationItemRepository) ListByBatchIDAndStatus(batchID string, status domain.BatchItemStatus) ([]*domain.BatchOperationItem, error) {
	return r.listItems(squirrel.Eq{"batch_id": batchID, "status": status})
}

func (r *batchOperationItemRepository) listItems(whereClause map[string]interface{}) ([]*domain.BatchOperationItem, error) {
	sqlQuery, args, err := squirrel.
		Select(batchItemColumns...).
		From(batchItemsTable).
		Where(whereClause).
		OrderBy("created_at ASC, id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	items := make([]*domain.BatchOperationItem, 0)

	for rows.Next() {
		item, err := r.deserializeItem(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return items, nil
}

func (r *batchOperationItemRepository) deserializeItem(rows *sql.Rows) (*domain.BatchOperationItem, error) {
	item := &domain.BatchOperationItem{}

	var change []byte
	var previousState []byte

	if err := rows.Scan(
		&item.ID,
		&item.BatchID,
		&item.EntityType,
		&item.EntityID,
		&item.EntityName,
		&change,
		&item.Status,
		&item.ErrorMessage,
		&previousState,
		&item.AppliedAt,
		&item.RolledBackAt,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(change, &item.Change); err != nil {
		return nil, fmt.Errorf("erro ao deserializar a mudança do item %s: %w", item.ID, err)
	}

	if len(previousState) > 0 {
		item.PreviousState = json.RawMessage(previousState)
	}

	return item, nil
}

func (r *batchOperationItemRepository) SavePreviousState(itemID string, state json.RawMessage) error {
	return r.updateItem(itemID, squirrel.
		Update(batchItemsTable).
		Set("previous_state", []byte(state)))
}

func (r *batchOperationItemRepository) MarkSuccess(itemID string) error {
	return r.updateItem(itemID, squirrel.
		Update(batchItemsTable).
		Set("status", domain.BatchItemStatusSuccess).
		Set("applied_at", time.Now()))
}

func (r *batchOperationItemRepository) MarkFailed(itemID string, errorMessage string) error {
	return r.updateItem(itemID, squirrel.
		Update(batchItemsTable).
		Set("status", domain.BatchItemStatusFailed).
		Set("error_message", errorMessage))
}

func (r *batchOperationItemRepository) MarkRolledBack(itemID string) error {
	return r.updateItem(itemID, squirrel.
		Update(batchItemsTable).
		Set("status", domain.BatchItemStatusRolledBack).
		Set("rolled_back_at", time.Now()).
		Where(squirrel.Eq{"status": domain.BatchItemStatusSuccess}))
}

func (r *batchOperationItemRepository) updateItem(itemID string, queryBuilder squirrel.UpdateBuilder) error {
	sqlQuery, args, err := queryBuilder.
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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
		return errors.New("batch operation item not found")
	}

	return nil
}
