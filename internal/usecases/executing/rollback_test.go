package executing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestEngine_Rollback(t *testing.T) {
	snapshot := json.RawMessage(`{"campaign_id":"CAMP000","existed":false,"existing_id":"NK001"}`)

	t.Run("Somente itens aplicados com sucesso são revertidos", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(2)
		batch.Status = domain.BatchStatusRolledBack

		for _, item := range items {
			item.Status = domain.BatchItemStatusSuccess
			item.PreviousState = snapshot
		}

		// O repositório só devolve itens em success; failed e pending ficam de fora
		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusSuccess).
			Return(items, nil)

		for _, item := range items {
			m.mutator.EXPECT().
				ApplyInverse(gomock.Any(), domain.BatchTypeNegativeKeyword, item).
				Return(nil)
			m.itemRepo.EXPECT().MarkRolledBack(item.ID).Return(nil)
		}

		result, err := engine.Rollback(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.RolledBackItems)
		assert.Equal(t, 0, result.FailedRollbacks)
	})

	t.Run("Falha na mutação inversa mantém o item em success", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(2)
		batch.Status = domain.BatchStatusRolledBack

		for _, item := range items {
			item.Status = domain.BatchItemStatusSuccess
			item.PreviousState = snapshot
		}

		permanentErr := &adsdomain.RemoteError{
			Code:       adsdomain.CodeInvalidParameter,
			Message:    "Invalid parameter",
			StatusCode: 400,
		}

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusSuccess).
			Return(items, nil)

		m.mutator.EXPECT().
			ApplyInverse(gomock.Any(), domain.BatchTypeNegativeKeyword, items[0]).
			Return(nil)
		m.itemRepo.EXPECT().MarkRolledBack(items[0].ID).Return(nil)

		// MarkRolledBack nunca é chamado para o item que falhou
		m.mutator.EXPECT().
			ApplyInverse(gomock.Any(), domain.BatchTypeNegativeKeyword, items[1]).
			Return(permanentErr)

		result, err := engine.Rollback(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.RolledBackItems)
		assert.Equal(t, 1, result.FailedRollbacks)
	})

	t.Run("Item sem snapshot persistido é contado como falha de rollback", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, items := negativeKeywordBatch(1)
		batch.Status = domain.BatchStatusRolledBack
		items[0].Status = domain.BatchItemStatusSuccess
		// PreviousState vazio: a inversa não tem entrada

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusSuccess).
			Return(items, nil)

		result, err := engine.Rollback(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.RolledBackItems)
		assert.Equal(t, 1, result.FailedRollbacks)
	})

	t.Run("Lote sem itens aplicados finaliza sem chamadas remotas", func(t *testing.T) {
		engine, m := newEngineWithMocks(t)
		batch, _ := negativeKeywordBatch(0)
		batch.Status = domain.BatchStatusRolledBack

		m.itemRepo.EXPECT().
			ListByBatchIDAndStatus(batch.ID, domain.BatchItemStatusSuccess).
			Return([]*domain.BatchOperationItem{}, nil)

		result, err := engine.Rollback(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.RolledBackItems)
		assert.Equal(t, 0, result.FailedRollbacks)
	})
}
