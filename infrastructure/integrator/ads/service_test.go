package ads

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	clientmocks "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/adsclient/mocks"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegratorWithMock(t *testing.T) (Mutator, *clientmocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := clientmocks.NewMockClient(ctrl)
	return New(&config.Config{}, client), client
}

func negativeKeywordItem(keyword, matchType string) *domain.BatchOperationItem {
	return &domain.BatchOperationItem{
		ID:         "item01",
		BatchID:    "abc123",
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "CAMP001",
		Change: domain.ProposedChange{
			NegativeKeyword: &domain.NegativeKeywordChange{Keyword: keyword, MatchType: matchType},
		},
	}
}

func TestAdsIntegrator_ReadCurrentState(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshot registra que a palavra negativa já existia", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")

		client.EXPECT().
			ListNegativeKeywords(ctx, "CAMP001").
			Return([]adsdomain.NegativeKeyword{
				{ID: "NK001", Text: "gratis", MatchType: "broad", CampaignID: "CAMP001"},
			}, nil)

		raw, err := integrator.ReadCurrentState(ctx, domain.BatchTypeNegativeKeyword, item)
		assert.NoError(t, err)

		var snapshot adsdomain.NegativeKeywordSnapshot
		assert.NoError(t, json.Unmarshal(raw, &snapshot))
		assert.True(t, snapshot.Existed)
		assert.Equal(t, "NK001", snapshot.ExistingID)
	})

	t.Run("Snapshot de palavra negativa inexistente", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")

		client.EXPECT().
			ListNegativeKeywords(ctx, "CAMP001").
			Return([]adsdomain.NegativeKeyword{
				{ID: "NK002", Text: "barato", MatchType: "broad", CampaignID: "CAMP001"},
			}, nil)

		raw, err := integrator.ReadCurrentState(ctx, domain.BatchTypeNegativeKeyword, item)
		assert.NoError(t, err)

		var snapshot adsdomain.NegativeKeywordSnapshot
		assert.NoError(t, json.Unmarshal(raw, &snapshot))
		assert.False(t, snapshot.Existed)
	})

	t.Run("Snapshot de keyword preserva lance e campanha atuais", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{
			ID:         "item01",
			EntityType: domain.EntityTypeKeyword,
			EntityID:   "KW001",
			Change: domain.ProposedChange{
				BidAdjustment: &domain.BidAdjustmentChange{CurrentBid: 1.5, NewBid: 2.0},
			},
		}

		client.EXPECT().
			GetKeyword(ctx, "KW001").
			Return(&adsdomain.Keyword{ID: "KW001", Text: "oculos de grau", Bid: 1.5, CampaignID: "CAMP001"}, nil)

		raw, err := integrator.ReadCurrentState(ctx, domain.BatchTypeBidAdjustment, item)
		assert.NoError(t, err)

		var snapshot adsdomain.KeywordSnapshot
		assert.NoError(t, json.Unmarshal(raw, &snapshot))
		assert.Equal(t, 1.5, snapshot.Bid)
		assert.Equal(t, "CAMP001", snapshot.CampaignID)
	})

	t.Run("Payload incompatível com o tipo é rejeitado", func(t *testing.T) {
		integrator, _ := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")

		_, err := integrator.ReadCurrentState(ctx, domain.BatchTypeCampaignStatus, item)
		assert.ErrorIs(t, err, ErrChangePayloadMissing)
	})
}

func TestAdsIntegrator_ApplyChange(t *testing.T) {
	ctx := context.Background()

	t.Run("Palavra negativa nova é criada na campanha", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")
		item.PreviousState, _ = json.Marshal(adsdomain.NegativeKeywordSnapshot{
			CampaignID: "CAMP001", Text: "gratis", MatchType: "broad", Existed: false,
		})

		client.EXPECT().
			CreateNegativeKeyword(ctx, "CAMP001", "gratis", "broad").
			Return("NK010", nil)

		assert.NoError(t, integrator.ApplyChange(ctx, domain.BatchTypeNegativeKeyword, item))
	})

	t.Run("Palavra negativa já existente não é recriada", func(t *testing.T) {
		integrator, _ := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")
		item.PreviousState, _ = json.Marshal(adsdomain.NegativeKeywordSnapshot{
			CampaignID: "CAMP001", Text: "gratis", MatchType: "broad", Existed: true, ExistingID: "NK001",
		})

		// Nenhuma chamada remota esperada
		assert.NoError(t, integrator.ApplyChange(ctx, domain.BatchTypeNegativeKeyword, item))
	})

	t.Run("Ajuste de lance usa o novo valor proposto", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{
			EntityID: "KW001",
			Change: domain.ProposedChange{
				BidAdjustment: &domain.BidAdjustmentChange{CurrentBid: 1.5, NewBid: 2.0},
			},
		}

		client.EXPECT().UpdateKeywordBid(ctx, "KW001", 2.0).Return(nil)

		assert.NoError(t, integrator.ApplyChange(ctx, domain.BatchTypeBidAdjustment, item))
	})
}

func TestAdsIntegrator_ApplyInverse(t *testing.T) {
	ctx := context.Background()

	t.Run("Palavra negativa criada pelo lote é removida", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")
		item.PreviousState, _ = json.Marshal(adsdomain.NegativeKeywordSnapshot{
			CampaignID: "CAMP001", Text: "gratis", MatchType: "broad", Existed: false,
		})

		client.EXPECT().
			ListNegativeKeywords(ctx, "CAMP001").
			Return([]adsdomain.NegativeKeyword{
				{ID: "NK010", Text: "gratis", MatchType: "broad", CampaignID: "CAMP001"},
			}, nil)
		client.EXPECT().DeleteNegativeKeyword(ctx, "NK010").Return(nil)

		assert.NoError(t, integrator.ApplyInverse(ctx, domain.BatchTypeNegativeKeyword, item))
	})

	t.Run("Palavra negativa preexistente ao lote não é removida", func(t *testing.T) {
		integrator, _ := newIntegratorWithMock(t)
		item := negativeKeywordItem("gratis", "broad")
		item.PreviousState, _ = json.Marshal(adsdomain.NegativeKeywordSnapshot{
			CampaignID: "CAMP001", Text: "gratis", MatchType: "broad", Existed: true, ExistingID: "NK001",
		})

		assert.NoError(t, integrator.ApplyInverse(ctx, domain.BatchTypeNegativeKeyword, item))
	})

	t.Run("Lance é restaurado ao valor do snapshot", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{EntityID: "KW001"}
		item.PreviousState, _ = json.Marshal(adsdomain.KeywordSnapshot{ID: "KW001", Bid: 1.5, CampaignID: "CAMP001"})

		client.EXPECT().UpdateKeywordBid(ctx, "KW001", 1.5).Return(nil)

		assert.NoError(t, integrator.ApplyInverse(ctx, domain.BatchTypeBidAdjustment, item))
	})

	t.Run("Migração é revertida para a campanha de origem", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{EntityID: "KW001"}
		item.PreviousState, _ = json.Marshal(adsdomain.KeywordSnapshot{ID: "KW001", Bid: 1.5, CampaignID: "CAMP001"})

		client.EXPECT().MoveKeyword(ctx, "KW001", "CAMP001").Return(nil)

		assert.NoError(t, integrator.ApplyInverse(ctx, domain.BatchTypeKeywordMigration, item))
	})

	t.Run("Status de campanha volta ao valor anterior", func(t *testing.T) {
		integrator, client := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{EntityID: "CAMP001"}
		item.PreviousState, _ = json.Marshal(adsdomain.CampaignSnapshot{ID: "CAMP001", Status: adsdomain.CampaignStatusActive})

		client.EXPECT().UpdateCampaignStatus(ctx, "CAMP001", adsdomain.CampaignStatusActive).Return(nil)

		assert.NoError(t, integrator.ApplyInverse(ctx, domain.BatchTypeCampaignStatus, item))
	})

	t.Run("Item sem snapshot não pode ser revertido", func(t *testing.T) {
		integrator, _ := newIntegratorWithMock(t)
		item := &domain.BatchOperationItem{EntityID: "KW001"}

		err := integrator.ApplyInverse(ctx, domain.BatchTypeBidAdjustment, item)
		assert.ErrorIs(t, err, ErrSnapshotMissing)
	})
}
