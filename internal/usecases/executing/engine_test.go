package executing

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	adsmocks "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/mocks"
	"github.com/ivstraffic/batch-operations-api/infrastructure/repository/mocks"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	batchRepo *mocks.MockBatchOperationRepository
	itemRepo  *mocks.MockBatchOperationItemRepository
	mutator   *adsmocks.MockMutator
}

func newEngineWithMocks(t *testing.T) (*Engine, engineMocks) {
	ctrl := gomock.NewController(t)

	m := engineMocks{
		batchRepo: mocks.NewMockBatchOperationRepository(ctrl),
		itemRepo:  mocks.NewMockBatchOperationItemRepository(ctrl),
		mutator:   adsmocks.NewMockMutator(ctrl),
	}

	cfg := &config.Config{}
	cfg.BatchExecution.MaxConcurrentWorkers = 2
	cfg.BatchExecution.MaxRetries = 2
	cfg.BatchExecution.RetryBackoffSeconds = 0

	return NewEngine(m.batchRepo, m.itemRepo, m.mutator, cfg), m
}

func negativeKeywordBatch(totalItems int) (*domain.BatchOperation, []*domain.BatchOperationItem) {
	batch := &domain.BatchOperation{
		ID:            "abc123",
		Name:          "Negativação semanal",
		OperationType: domain.BatchTypeNegativeKeyword,
		Status:        domain.BatchStatusExecuting,
		TotalItems:    totalItems,
	}

	items := make([]*domain.BatchOperationItem, 0, totalItems)
	for i := 0; i < totalItems; i++ {
		items = append(items, &domain.BatchOperationItem{
			ID:         fmt.Sprintf("item%02d", i),
			BatchID:    batch.ID,
			EntityType: domain.EntityTypeCampaign,
			EntityID:   fmt.Sprintf("CAMP%03d", i),
			Status:     domain.BatchItemStatusPending,
			Change: domain.ProposedChange{
				NegativeKeyword: &domain.NegativeKeywordChange{Keyword: "gratis", MatchType: "broad"},
			},
		})
	}

	return batch, items
}

func TestEngine_Execute(t *testing.T) {
	snapshot := json.RawMessage(`{"campaign_id":"CAMP000","existed":false}`)

	t.Run("Todos os itens aplicados com sucesso levam o lote a completed", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(5)

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending).
			Return(items, nil)

		for _, item := range items {
			m.mutator.EXPECT().
				ReadCurrentState(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(snapshot, nil)
			m.itemRepo.EXPECT().SavePreviousState(item.ID, snapshot).Return(nil)
			m.mutator.EXPECT().
				ApplyChange(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(nil)
			m.itemRepo.EXPECT().MarkSuccess(item.ID).Return(nil)
		}

		// Um flush de contadores por item processado
		m.batchRepo.EXPECT().
			UpdateCounters(batch.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(5)

		m.batchRepo.EXPECT().
			FinishExecution(batch.ID, domain.BatchStatusCompleted, 5, 5, 0).
			Return(true, nil)

		result, err := engine.Execute(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 5, result.TotalItems)
		assert.Equal(t, 5, result.SuccessItems)
		assert.Equal(t, 0, result.FailedItems)
	})

	t.Run("Falha permanente de um item não interrompe os demais", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(3)
		batch.OperationType = domain.BatchTypeBidAdjustment

		permanentErr := &adsdomain.RemoteError{
			Code:       adsdomain.CodeInvalidParameter,
			Message:    "Invalid parameter",
			StatusCode: 400,
		}

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending).
			Return(items, nil)

		for i, item := range items {
			m.mutator.EXPECT().
				ReadCurrentState(gomock.Any(), domain.BatchTypeBidAdjustment, item).
				Return(snapshot, nil)
			m.itemRepo.EXPECT().SavePreviousState(item.ID, snapshot).Return(nil)

			if i == 1 {
				// Erro permanente: uma única tentativa, sem retry
				m.mutator.EXPECT().
					ApplyChange(gomock.Any(), domain.BatchTypeBidAdjustment, item).
					Return(permanentErr)
				m.itemRepo.EXPECT().MarkFailed(item.ID, permanentErr.Error()).Return(nil)
			} else {
				m.mutator.EXPECT().
					ApplyChange(gomock.Any(), domain.BatchTypeBidAdjustment, item).
					Return(nil)
				m.itemRepo.EXPECT().MarkSuccess(item.ID).Return(nil)
			}
		}

		m.batchRepo.EXPECT().
			UpdateCounters(batch.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(3)

		// Sucesso parcial ainda é completed
		m.batchRepo.EXPECT().
			FinishExecution(batch.ID, domain.BatchStatusCompleted, 3, 2, 1).
			Return(true, nil)

		result, err := engine.Execute(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.SuccessItems)
		assert.Equal(t, 1, result.FailedItems)
	})

	t.Run("Nenhum sucesso leva o lote a failed", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(2)

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending).
			Return(items, nil)

		permanentErr := &adsdomain.RemoteError{
			Code:       adsdomain.CodeInvalidParameter,
			Subcode:    33,
			Message:    "Unsupported get request",
			StatusCode: 400,
		}

		for _, item := range items {
			// A captura do snapshot já falha: nenhuma mutação é tentada
			m.mutator.EXPECT().
				ReadCurrentState(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(nil, permanentErr)
			m.itemRepo.EXPECT().MarkFailed(item.ID, permanentErr.Error()).Return(nil)
		}

		m.batchRepo.EXPECT().
			UpdateCounters(batch.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		m.batchRepo.EXPECT().
			FinishExecution(batch.ID, domain.BatchStatusFailed, 2, 0, 2).
			Return(true, nil)

		result, err := engine.Execute(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.SuccessItems)
		assert.Equal(t, 2, result.FailedItems)
	})

	t.Run("Erro transitório é repetido até suceder", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(1)
		item := items[0]

		rateLimitErr := &adsdomain.RemoteError{
			Code:       adsdomain.CodeTooManyCalls,
			Message:    "Too many calls",
			StatusCode: 429,
		}

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending).
			Return(items, nil)

		m.mutator.EXPECT().
			ReadCurrentState(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
			Return(snapshot, nil)
		m.itemRepo.EXPECT().SavePreviousState(item.ID, snapshot).Return(nil)

		gomock.InOrder(
			m.mutator.EXPECT().
				ApplyChange(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(rateLimitErr),
			m.mutator.EXPECT().
				ApplyChange(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(nil),
		)

		m.itemRepo.EXPECT().MarkSuccess(item.ID).Return(nil)

		m.batchRepo.EXPECT().
			UpdateCounters(batch.ID, 1, 1, 0).
			Return(nil)

		m.batchRepo.EXPECT().
			FinishExecution(batch.ID, domain.BatchStatusCompleted, 1, 1, 0).
			Return(true, nil)

		result, err := engine.Execute(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.SuccessItems)
	})

	t.Run("Falha ao persistir snapshot impede a mutação do item", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(1)
		item := items[0]

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusPending).
			Return(items, nil)

		m.mutator.EXPECT().
			ReadCurrentState(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
			Return(snapshot, nil)

		dbErr := fmt.Errorf("connection reset")
		m.itemRepo.EXPECT().SavePreviousState(item.ID, snapshot).Return(dbErr)
		// ApplyChange nunca é chamado
		m.itemRepo.EXPECT().MarkFailed(item.ID, dbErr.Error()).Return(nil)

		m.batchRepo.EXPECT().UpdateCounters(batch.ID, 1, 0, 1).Return(nil)
		m.batchRepo.EXPECT().
			FinishExecution(batch.ID, domain.BatchStatusFailed, 1, 0, 1).
			Return(true, nil)

		result, err := engine.Execute(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.FailedItems)
	})
}
