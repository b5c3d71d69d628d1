package batching

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ivstraffic/batch-operations-api/infrastructure/repository/mocks"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	enginemocks "github.com/ivstraffic/batch-operations-api/internal/usecases/batching/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	conn      *mocks.MockTransactionRunner
	batchRepo *mocks.MockBatchOperationRepository
	itemRepo  *mocks.MockBatchOperationItemRepository
	engine    *enginemocks.MockExecutionEngine
}

func newServiceWithMocks(t *testing.T) (BatchService, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		conn:      mocks.NewMockTransactionRunner(ctrl),
		batchRepo: mocks.NewMockBatchOperationRepository(ctrl),
		itemRepo:  mocks.NewMockBatchOperationItemRepository(ctrl),
		engine:    enginemocks.NewMockExecutionEngine(ctrl),
	}

	service := NewService(m.conn, m.batchRepo, m.itemRepo, m.engine, &config.Config{})
	return service, m
}

func batchInStatus(id string, status domain.BatchOperationStatus) *domain.BatchOperation {
	return &domain.BatchOperation{
		ID:            id,
		Name:          "Negativação semanal",
		OperationType: domain.BatchTypeNegativeKeyword,
		Status:        status,
		TotalItems:    2,
		CreatedAt:     time.Now(),
	}
}

func TestService_Create(t *testing.T) {
	validItems := []*domain.CreateBatchItemRequest{
		{
			EntityType: domain.EntityTypeCampaign,
			EntityID:   "CAMP001",
			EntityName: "Campanha Óculos de Grau",
			Change: domain.ProposedChange{
				NegativeKeyword: &domain.NegativeKeywordChange{Keyword: "gratis", MatchType: "broad"},
			},
		},
	}

	tests := []struct {
		name     string
		request  *domain.CreateBatchOperationRequest
		setup    func(m serviceMocks)
		validate func(t *testing.T, batch *domain.BatchOperation, err error)
	}{
		{
			name: "Lote válido é persistido com itens na mesma transação",
			request: &domain.CreateBatchOperationRequest{
				Name:          "Negativação semanal",
				OperationType: domain.BatchTypeNegativeKeyword,
				Items:         validItems,
			},
			setup: func(m serviceMocks) {
				m.conn.EXPECT().
					RunInTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
						return fn(nil)
					})

				m.batchRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ *sql.Tx, batch *domain.BatchOperation) error {
						assert.Equal(t, domain.BatchStatusPending, batch.Status)
						assert.Equal(t, 1, batch.TotalItems)
						return nil
					})

				m.itemRepo.EXPECT().
					BulkCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ *sql.Tx, items []*domain.BatchOperationItem) error {
						assert.Len(t, items, 1)
						assert.Equal(t, domain.BatchItemStatusPending, items[0].Status)
						assert.NotEmpty(t, items[0].ID)
						return nil
					})
			},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, batch.ID)
				assert.Equal(t, domain.BatchStatusPending, batch.Status)
				assert.Len(t, batch.Items, 1)
			},
		},
		{
			name: "Lote sem itens é rejeitado",
			request: &domain.CreateBatchOperationRequest{
				Name:          "Lote vazio",
				OperationType: domain.BatchTypeNegativeKeyword,
			},
			setup: func(m serviceMocks) {},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrEmptyItems)
			},
		},
		{
			name: "Tipo de operação desconhecido é rejeitado",
			request: &domain.CreateBatchOperationRequest{
				Name:          "Lote inválido",
				OperationType: domain.BatchOperationType("pause_everything"),
				Items:         validItems,
			},
			setup: func(m serviceMocks) {},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrInvalidOperationType)
			},
		},
		{
			name: "Payload incompatível com o tipo do lote é rejeitado",
			request: &domain.CreateBatchOperationRequest{
				Name:          "Negativação com payload de lance",
				OperationType: domain.BatchTypeNegativeKeyword,
				Items: []*domain.CreateBatchItemRequest{
					{
						EntityType: domain.EntityTypeKeyword,
						EntityID:   "KW001",
						Change: domain.ProposedChange{
							BidAdjustment: &domain.BidAdjustmentChange{CurrentBid: 1.5, NewBid: 2.0},
						},
					},
				},
			},
			setup: func(m serviceMocks) {},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrChangeMismatch)
			},
		},
		{
			name: "Falha de banco na persistência vira erro de operação",
			request: &domain.CreateBatchOperationRequest{
				Name:          "Negativação semanal",
				OperationType: domain.BatchTypeNegativeKeyword,
				Items:         validItems,
			},
			setup: func(m serviceMocks) {
				m.conn.EXPECT().
					RunInTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.setup(m)

			batch, err := service.Create(tt.request)
			tt.validate(t, batch, err)
		})
	}
}

func TestService_Approve(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m serviceMocks)
		validate func(t *testing.T, batch *domain.BatchOperation, err error)
	}{
		{
			name: "Lote pendente é aprovado",
			setup: func(m serviceMocks) {
				m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)
				m.batchRepo.EXPECT().
					TransitionStatus("abc123", domain.BatchStatusPending, domain.BatchStatusApproved, "approved_at").
					Return(true, nil)
				m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusApproved), nil)
			},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BatchStatusApproved, batch.Status)
			},
		},
		{
			name: "Lote cancelado não pode ser aprovado",
			setup: func(m serviceMocks) {
				m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusCancelled), nil)
				m.batchRepo.EXPECT().
					TransitionStatus("abc123", domain.BatchStatusPending, domain.BatchStatusApproved, "approved_at").
					Return(false, nil)
				m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusCancelled), nil)
			},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			},
		},
		{
			name: "Lote inexistente retorna não encontrado",
			setup: func(m serviceMocks) {
				m.batchRepo.EXPECT().GetByID("abc123").Return(nil, nil)
			},
			validate: func(t *testing.T, batch *domain.BatchOperation, err error) {
				assert.Nil(t, batch)
				assert.ErrorIs(t, err, ErrBatchNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newServiceWithMocks(t)
			tt.setup(m)

			batch, err := service.Approve("abc123")
			tt.validate(t, batch, err)
		})
	}
}

func TestService_Execute(t *testing.T) {
	t.Run("Lote aprovado inicia execução em background", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		engineCalled := make(chan struct{})

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusApproved), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusApproved, domain.BatchStatusExecuting, "executed_at").
			Return(true, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusExecuting), nil)

		m.engine.EXPECT().
			Execute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.BatchOperation) (*domain.ExecutionResult, error) {
				defer close(engineCalled)
				return &domain.ExecutionResult{TotalItems: 2, SuccessItems: 2}, nil
			})

		batch, err := service.Execute("abc123")

		assert.NoError(t, err)
		assert.Equal(t, domain.BatchStatusExecuting, batch.Status)

		select {
		case <-engineCalled:
		case <-time.After(2 * time.Second):
			t.Fatal("motor de execução não foi acionado")
		}
	})

	t.Run("Segunda chamada concorrente de execução é rejeitada", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		// O compare-and-swap já foi vencido por outra requisição
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusExecuting), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusApproved, domain.BatchStatusExecuting, "executed_at").
			Return(false, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusExecuting), nil)

		batch, err := service.Execute("abc123")

		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrConcurrentExecutionRejected)

		var batchErr *BatchError
		assert.ErrorAs(t, err, &batchErr)
		assert.Equal(t, "abc123", batchErr.BatchID)
	})

	t.Run("Lote pendente não pode ser executado sem aprovação", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusApproved, domain.BatchStatusExecuting, "executed_at").
			Return(false, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)

		batch, err := service.Execute("abc123")

		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Rollback(t *testing.T) {
	t.Run("Lote concluído é revertido em background", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		engineCalled := make(chan struct{})

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusCompleted), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusCompleted, domain.BatchStatusRolledBack, "rolled_back_at").
			Return(true, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusRolledBack), nil)

		m.engine.EXPECT().
			Rollback(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.BatchOperation) (*domain.RollbackResult, error) {
				defer close(engineCalled)
				return &domain.RollbackResult{RolledBackItems: 2}, nil
			})

		batch, err := service.Rollback("abc123")

		assert.NoError(t, err)
		assert.Equal(t, domain.BatchStatusRolledBack, batch.Status)

		select {
		case <-engineCalled:
		case <-time.After(2 * time.Second):
			t.Fatal("motor de rollback não foi acionado")
		}
	})

	t.Run("Lote pendente não pode ser revertido", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusCompleted, domain.BatchStatusRolledBack, "rolled_back_at").
			Return(false, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)

		batch, err := service.Rollback("abc123")

		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Lote que falhou por completo não pode ser revertido", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusFailed), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusCompleted, domain.BatchStatusRolledBack, "rolled_back_at").
			Return(false, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusFailed), nil)

		batch, err := service.Rollback("abc123")

		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("Lote pendente é cancelado sem carimbo de data", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)
		m.batchRepo.EXPECT().
			TransitionStatus("abc123", domain.BatchStatusPending, domain.BatchStatusCancelled, "").
			Return(true, nil)
		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusCancelled), nil)

		batch, err := service.Cancel("abc123")

		assert.NoError(t, err)
		assert.Equal(t, domain.BatchStatusCancelled, batch.Status)
	})
}

func TestService_Update(t *testing.T) {
	newName := "Negativação revisada"

	t.Run("Lote pendente pode ser editado", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		request := &domain.UpdateBatchOperationRequest{ID: "abc123", Name: &newName}

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusPending), nil)
		m.batchRepo.EXPECT().UpdateDetails(request).Return(nil)

		updated := batchInStatus("abc123", domain.BatchStatusPending)
		updated.Name = newName
		m.batchRepo.EXPECT().GetByID("abc123").Return(updated, nil)
		m.itemRepo.EXPECT().ListByBatchID("abc123").Return([]*domain.BatchOperationItem{}, nil)

		batch, err := service.Update(request)

		assert.NoError(t, err)
		assert.Equal(t, newName, batch.Name)
	})

	t.Run("Lote aprovado não pode mais ser editado", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.batchRepo.EXPECT().GetByID("abc123").Return(batchInStatus("abc123", domain.BatchStatusApproved), nil)

		batch, err := service.Update(&domain.UpdateBatchOperationRequest{ID: "abc123", Name: &newName})

		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
