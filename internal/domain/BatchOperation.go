package domain

import (
	"time"
)

type BatchOperationType string

const (
	BatchTypeNegativeKeyword  BatchOperationType = "negative_keyword"
	BatchTypeBidAdjustment    BatchOperationType = "bid_adjustment"
	BatchTypeKeywordMigration BatchOperationType = "keyword_migration"
	BatchTypeCampaignStatus   BatchOperationType = "campaign_status"
)

// IsValid verifica se o tipo de operação é um dos tipos suportados
func (t BatchOperationType) IsValid() bool {
	switch t {
	case BatchTypeNegativeKeyword, BatchTypeBidAdjustment, BatchTypeKeywordMigration, BatchTypeCampaignStatus:
		return true
	}
	return false
}

type BatchOperationStatus string

const (
	BatchStatusPending    BatchOperationStatus = "pending"
	BatchStatusApproved   BatchOperationStatus = "approved"
	BatchStatusExecuting  BatchOperationStatus = "executing"
	BatchStatusCompleted  BatchOperationStatus = "completed"
	BatchStatusFailed     BatchOperationStatus = "failed"
	BatchStatusCancelled  BatchOperationStatus = "cancelled"
	BatchStatusRolledBack BatchOperationStatus = "rolled_back"
)

// IsValid verifica se o status é um dos status conhecidos
func (s BatchOperationStatus) IsValid() bool {
	switch s {
	case BatchStatusPending, BatchStatusApproved, BatchStatusExecuting,
		BatchStatusCompleted, BatchStatusFailed, BatchStatusCancelled, BatchStatusRolledBack:
		return true
	}
	return false
}

type BatchOperation struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	OperationType  BatchOperationType   `json:"operation_type"`
	Status         BatchOperationStatus `json:"status"`
	TotalItems     int                  `json:"total_items"`
	ProcessedItems int                  `json:"processed_items"`
	SuccessItems   int                  `json:"success_items"`
	FailedItems    int                  `json:"failed_items"`
	CreatedAt      time.Time            `json:"created_at"`
	ApprovedAt     *time.Time           `json:"approved_at,omitempty"`
	ExecutedAt     *time.Time           `json:"executed_at,omitempty"`
	CompletedAt    *time.Time           `json:"completed_at,omitempty"`
	RolledBackAt   *time.Time           `json:"rolled_back_at,omitempty"`

	// Items é preenchido apenas na consulta de detalhes
	Items []*BatchOperationItem `json:"items,omitempty"`
}

type CreateBatchOperationRequest struct {
	Name          string                    `json:"name"`
	Description   string                    `json:"description"`
	OperationType BatchOperationType        `json:"operation_type"`
	Items         []*CreateBatchItemRequest `json:"items"`
}

type UpdateBatchOperationRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ExecutionResult struct {
	TotalItems   int `json:"total_items"`
	SuccessItems int `json:"success_items"`
	FailedItems  int `json:"failed_items"`
}

type RollbackResult struct {
	RolledBackItems int `json:"rolled_back_items"`
	FailedRollbacks int `json:"failed_rollbacks"`
}
