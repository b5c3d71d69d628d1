package batching

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/infrastructure/repository"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"github.com/ivstraffic/batch-operations-api/pkg/apiErrors"
	"github.com/ivstraffic/batch-operations-api/pkg/log"
	"github.com/ivstraffic/batch-operations-api/pkg/utils"
)

// ExecutionEngine aplica ou reverte os itens de um lote já transicionado pelo
// controlador de ciclo de vida
type ExecutionEngine interface {
	Execute(ctx context.Context, batch *domain.BatchOperation) (*domain.ExecutionResult, error)
	Rollback(ctx context.Context, batch *domain.BatchOperation) (*domain.RollbackResult, error)
}

type BatchService interface {
	Create(request *domain.CreateBatchOperationRequest) (*domain.BatchOperation, error)
	Update(request *domain.UpdateBatchOperationRequest) (*domain.BatchOperation, error)
	Get(batchID string) (*domain.BatchOperation, error)
	List(status *domain.BatchOperationStatus) ([]*domain.BatchOperation, error)
	Approve(batchID string) (*domain.BatchOperation, error)
	Cancel(batchID string) (*domain.BatchOperation, error)
	Execute(batchID string) (*domain.BatchOperation, error)
	Rollback(batchID string) (*domain.BatchOperation, error)
}

type Service struct {
	conn      repository.TransactionRunner
	batchRepo repository.BatchOperationRepository
	itemRepo  repository.BatchOperationItemRepository
	engine    ExecutionEngine
	cfg       *config.Config
}

func NewService(
	conn repository.TransactionRunner,
	batchRepo repository.BatchOperationRepository,
	itemRepo repository.BatchOperationItemRepository,
	engine ExecutionEngine,
	cfg *config.Config,
) BatchService {
	return &Service{
		conn:      conn,
		batchRepo: batchRepo,
		itemRepo:  itemRepo,
		engine:    engine,
		cfg:       cfg,
	}
}

// Create persiste o lote e todos os seus itens atomicamente. O conjunto de
// itens é fixado aqui: nenhum item é adicionado ou removido depois.
func (s *Service) Create(request *domain.CreateBatchOperationRequest) (*domain.BatchOperation, error) {
	if request.Name == "" {
		return nil, NewBatchError(ErrEmptyItems, apiErrors.ErrMissingRequiredData, "Nome do lote é obrigatório")
	}

	if !request.OperationType.IsValid() {
		return nil, NewBatchError(ErrInvalidOperationType, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("Tipo de operação desconhecido: %s", request.OperationType))
	}

	if len(request.Items) == 0 {
		return nil, NewBatchError(ErrEmptyItems, apiErrors.ErrMissingRequiredData, "O lote precisa de ao menos um item")
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, NewBatchError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o lote")
	}

	now := time.Now()

	batch := &domain.BatchOperation{
		ID:            batchID,
		Name:          request.Name,
		Description:   request.Description,
		OperationType: request.OperationType,
		Status:        domain.BatchStatusPending,
		TotalItems:    len(request.Items),
		CreatedAt:     now,
	}

	items := make([]*domain.BatchOperationItem, 0, len(request.Items))
	for i, itemReq := range request.Items {
		if itemReq.EntityID == "" {
			return nil, NewBatchError(ErrChangeMismatch, apiErrors.ErrMissingRequiredData,
				fmt.Sprintf("Item %d sem entity_id", i))
		}

		if itemReq.Change.VariantCount() != 1 || !itemReq.Change.MatchesType(request.OperationType) {
			return nil, NewBatchError(ErrChangeMismatch, apiErrors.ErrInvalidRequest,
				fmt.Sprintf("Item %d com payload incompatível com o tipo %s", i, request.OperationType))
		}

		itemID, err := utils.GenerateID()
		if err != nil {
			return nil, NewBatchError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para item")
		}

		items = append(items, &domain.BatchOperationItem{
			ID:         itemID,
			BatchID:    batchID,
			EntityType: itemReq.EntityType,
			EntityID:   itemReq.EntityID,
			EntityName: itemReq.EntityName,
			Change:     itemReq.Change,
			Status:     domain.BatchItemStatusPending,
			CreatedAt:  now,
		})
	}

	err = s.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := s.batchRepo.Create(tx, batch); err != nil {
			return err
		}
		return s.itemRepo.BulkCreate(tx, items)
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar lote de operações")
		return nil, NewBatchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao persistir o lote e seus itens")
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":       batch.ID,
		"operation_type": batch.OperationType,
		"total_items":    batch.TotalItems,
	}).Info("Lote de operações criado")

	batch.Items = items
	return batch, nil
}

// Update altera nome e descrição, permitido apenas antes da aprovação
func (s *Service) Update(request *domain.UpdateBatchOperationRequest) (*domain.BatchOperation, error) {
	batch, err := s.getExisting(request.ID)
	if err != nil {
		return nil, err
	}

	if batch.Status != domain.BatchStatusPending {
		return nil, NewBatchErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidTransition, batch.ID,
			fmt.Sprintf("Lote em %s não pode mais ser editado", batch.Status))
	}

	if err := s.batchRepo.UpdateDetails(request); err != nil {
		return nil, NewBatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar o lote")
	}

	return s.Get(request.ID)
}

func (s *Service) Get(batchID string) (*domain.BatchOperation, error) {
	batch, err := s.getExisting(batchID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByBatchID(batchID)
	if err != nil {
		return nil, NewBatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, batchID, "Falha ao consultar os itens do lote")
	}

	batch.Items = items
	return batch, nil
}

func (s *Service) List(status *domain.BatchOperationStatus) ([]*domain.BatchOperation, error) {
	batches, err := s.batchRepo.List(status)
	if err != nil {
		return nil, NewBatchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lotes")
	}

	return batches, nil
}

// Approve transiciona o lote de pending para approved
func (s *Service) Approve(batchID string) (*domain.BatchOperation, error) {
	return s.transition(batchID, domain.BatchStatusPending, domain.BatchStatusApproved, "approved_at")
}

// Cancel transiciona o lote de pending para cancelled, antes de qualquer
// chamada remota
func (s *Service) Cancel(batchID string) (*domain.BatchOperation, error) {
	return s.transition(batchID, domain.BatchStatusPending, domain.BatchStatusCancelled, "")
}

// Execute transiciona o lote de approved para executing e dispara o motor de
// execução em background. O compare-and-swap no status garante que apenas uma
// de duas chamadas simultâneas inicia a execução.
func (s *Service) Execute(batchID string) (*domain.BatchOperation, error) {
	batch, err := s.transition(batchID, domain.BatchStatusApproved, domain.BatchStatusExecuting, "executed_at")
	if err != nil {
		return nil, err
	}

	go s.runDetached(batch, "execução", func(ctx context.Context) error {
		result, err := s.engine.Execute(ctx, batch)
		if err != nil {
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"batch_id":      batch.ID,
			"total_items":   result.TotalItems,
			"success_items": result.SuccessItems,
			"failed_items":  result.FailedItems,
		}).Info("Execução do lote concluída")
		return nil
	})

	return batch, nil
}

// Rollback transiciona o lote de completed para rolled_back e dispara a
// reversão dos itens aplicados em background
func (s *Service) Rollback(batchID string) (*domain.BatchOperation, error) {
	batch, err := s.transition(batchID, domain.BatchStatusCompleted, domain.BatchStatusRolledBack, "rolled_back_at")
	if err != nil {
		return nil, err
	}

	go s.runDetached(batch, "rollback", func(ctx context.Context) error {
		result, err := s.engine.Rollback(ctx, batch)
		if err != nil {
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"batch_id":         batch.ID,
			"rolled_back":      result.RolledBackItems,
			"failed_rollbacks": result.FailedRollbacks,
		}).Info("Rollback do lote concluído")
		return nil
	})

	return batch, nil
}

// transition aplica o compare-and-swap de status e devolve o lote atualizado.
// Quando o CAS falha, o status atual decide entre transição inválida e
// execução concorrente rejeitada.
func (s *Service) transition(batchID string, from, to domain.BatchOperationStatus, stampColumn string) (*domain.BatchOperation, error) {
	if _, err := s.getExisting(batchID); err != nil {
		return nil, err
	}

	swapped, err := s.batchRepo.TransitionStatus(batchID, from, to, stampColumn)
	if err != nil {
		return nil, NewBatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, batchID, "Falha ao transicionar status do lote")
	}

	if !swapped {
		current, err := s.getExisting(batchID)
		if err != nil {
			return nil, err
		}

		// Outro chamador acabou de levar o lote para o estado intermediário
		if current.Status == domain.BatchStatusExecuting || current.Status == to {
			return nil, NewBatchErrorWithID(ErrConcurrentExecutionRejected, apiErrors.ErrConcurrentExecution, batchID,
				fmt.Sprintf("Lote já está em %s", current.Status))
		}

		return nil, NewBatchErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidTransition, batchID,
			fmt.Sprintf("Transição %s -> %s inválida a partir de %s", from, to, current.Status))
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"from":     from,
		"to":       to,
	}).Info("Transição de status do lote aplicada")

	return s.getExisting(batchID)
}

func (s *Service) getExisting(batchID string) (*domain.BatchOperation, error) {
	if batchID == "" {
		return nil, NewBatchError(ErrBatchNotFound, apiErrors.ErrMissingRequiredData, "ID do lote é obrigatório")
	}

	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, NewBatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, batchID, "Falha ao consultar lote no banco de dados")
	}

	if batch == nil {
		return nil, NewBatchErrorWithID(ErrBatchNotFound, apiErrors.ErrBatchNotFound, batchID, "Lote não encontrado")
	}

	return batch, nil
}

// runDetached executa o motor fora do ciclo de vida da requisição HTTP, com um
// contexto próprio e ID de correlação para rastrear a execução nos logs
func (s *Service) runDetached(batch *domain.BatchOperation, operation string, fn func(ctx context.Context) error) {
	ctx, correlationID := log.WithCorrelationID(context.Background())

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"batch_id":       batch.ID,
		"correlation_id": correlationID,
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Panic durante %s do lote: %v", operation, r)
		}
	}()

	if err := fn(ctx); err != nil {
		logger.WithError(err).Errorf("Erro durante %s do lote", operation)
	}
}
