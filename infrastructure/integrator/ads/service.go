package ads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/adsclient"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/domain"
)

var (
	ErrChangePayloadMissing = errors.New("change payload does not match the batch operation type")
	ErrSnapshotMissing      = errors.New("previous state snapshot is missing")
)

// Mutator é a fronteira com a plataforma de anúncios: lê o estado atual de uma
// entidade, aplica a mudança proposta de um item e aplica a mudança inversa a
// partir do snapshot capturado antes da aplicação.
type Mutator interface {
	ReadCurrentState(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) (json.RawMessage, error)
	ApplyChange(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) error
	ApplyInverse(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) error
}

type AdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) Mutator {
	return &AdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdsIntegrator) ReadCurrentState(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) (json.RawMessage, error) {
	if !item.Change.MatchesType(operationType) {
		return nil, ErrChangePayloadMissing
	}

	switch operationType {
	case domain.BatchTypeNegativeKeyword:
		return s.readNegativeKeywordState(ctx, item)

	case domain.BatchTypeBidAdjustment, domain.BatchTypeKeywordMigration:
		keyword, err := s.Client.GetKeyword(ctx, item.EntityID)
		if err != nil {
			return nil, err
		}

		return json.Marshal(adsdomain.KeywordSnapshot{
			ID:         keyword.ID,
			Text:       keyword.Text,
			MatchType:  keyword.MatchType,
			Bid:        keyword.Bid,
			CampaignID: keyword.CampaignID,
			Status:     keyword.Status,
		})

	case domain.BatchTypeCampaignStatus:
		campaign, err := s.Client.GetCampaign(ctx, item.EntityID)
		if err != nil {
			return nil, err
		}

		return json.Marshal(adsdomain.CampaignSnapshot{
			ID:     campaign.ID,
			Name:   campaign.Name,
			Status: campaign.Status,
		})
	}

	return nil, fmt.Errorf("unsupported operation type: %s", operationType)
}

// readNegativeKeywordState registra se a palavra negativa já existia na
// campanha, para o rollback saber se deve removê-la
func (s *AdsIntegrator) readNegativeKeywordState(ctx context.Context, item *domain.BatchOperationItem) (json.RawMessage, error) {
	change := item.Change.NegativeKeyword

	existing, err := s.Client.ListNegativeKeywords(ctx, item.EntityID)
	if err != nil {
		return nil, err
	}

	snapshot := adsdomain.NegativeKeywordSnapshot{
		CampaignID: item.EntityID,
		Text:       change.Keyword,
		MatchType:  change.MatchType,
	}

	for _, nk := range existing {
		if nk.Text == change.Keyword && nk.MatchType == change.MatchType {
			snapshot.Existed = true
			snapshot.ExistingID = nk.ID
			break
		}
	}

	return json.Marshal(snapshot)
}

func (s *AdsIntegrator) ApplyChange(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) error {
	if !item.Change.MatchesType(operationType) {
		return ErrChangePayloadMissing
	}

	switch operationType {
	case domain.BatchTypeNegativeKeyword:
		var snapshot adsdomain.NegativeKeywordSnapshot
		if err := json.Unmarshal(item.PreviousState, &snapshot); err != nil {
			return ErrSnapshotMissing
		}

		// A palavra negativa já existe na campanha: nada a fazer
		if snapshot.Existed {
			logrus.WithFields(logrus.Fields{
				"item_id":     item.ID,
				"campaign_id": item.EntityID,
			}).Debug("Palavra negativa já existente na campanha, aplicação ignorada")
			return nil
		}

		change := item.Change.NegativeKeyword
		_, err := s.Client.CreateNegativeKeyword(ctx, item.EntityID, change.Keyword, change.MatchType)
		return err

	case domain.BatchTypeBidAdjustment:
		return s.Client.UpdateKeywordBid(ctx, item.EntityID, item.Change.BidAdjustment.NewBid)

	case domain.BatchTypeKeywordMigration:
		return s.Client.MoveKeyword(ctx, item.EntityID, item.Change.KeywordMigration.TargetCampaignID)

	case domain.BatchTypeCampaignStatus:
		return s.Client.UpdateCampaignStatus(ctx, item.EntityID, item.Change.CampaignStatus.NewStatus)
	}

	return fmt.Errorf("unsupported operation type: %s", operationType)
}

func (s *AdsIntegrator) ApplyInverse(ctx context.Context, operationType domain.BatchOperationType, item *domain.BatchOperationItem) error {
	if len(item.PreviousState) == 0 {
		return ErrSnapshotMissing
	}

	switch operationType {
	case domain.BatchTypeNegativeKeyword:
		return s.inverseNegativeKeyword(ctx, item)

	case domain.BatchTypeBidAdjustment:
		var snapshot adsdomain.KeywordSnapshot
		if err := json.Unmarshal(item.PreviousState, &snapshot); err != nil {
			return ErrSnapshotMissing
		}
		return s.Client.UpdateKeywordBid(ctx, item.EntityID, snapshot.Bid)

	case domain.BatchTypeKeywordMigration:
		var snapshot adsdomain.KeywordSnapshot
		if err := json.Unmarshal(item.PreviousState, &snapshot); err != nil {
			return ErrSnapshotMissing
		}
		return s.Client.MoveKeyword(ctx, item.EntityID, snapshot.CampaignID)

	case domain.BatchTypeCampaignStatus:
		var snapshot adsdomain.CampaignSnapshot
		if err := json.Unmarshal(item.PreviousState, &snapshot); err != nil {
			return ErrSnapshotMissing
		}
		return s.Client.UpdateCampaignStatus(ctx, item.EntityID, snapshot.Status)
	}

	return fmt.Errorf("unsupported operation type: %s", operationType)
}

// inverseNegativeKeyword remove a palavra negativa criada pela aplicação. Se
// ela já existia antes do lote, o estado anterior já está preservado e nada é
// removido.
func (s *AdsIntegrator) inverseNegativeKeyword(ctx context.Context, item *domain.BatchOperationItem) error {
	var snapshot adsdomain.NegativeKeywordSnapshot
	if err := json.Unmarshal(item.PreviousState, &snapshot); err != nil {
		return ErrSnapshotMissing
	}

	if snapshot.Existed {
		return nil
	}

	existing, err := s.Client.ListNegativeKeywords(ctx, snapshot.CampaignID)
	if err != nil {
		return err
	}

	for _, nk := range existing {
		if nk.Text == snapshot.Text && nk.MatchType == snapshot.MatchType {
			return s.Client.DeleteNegativeKeyword(ctx, nk.ID)
		}
	}

	// Já não existe na campanha: o estado remoto é igual ao snapshot
	logrus.WithFields(logrus.Fields{
		"item_id":     item.ID,
		"campaign_id": snapshot.CampaignID,
	}).Debug("Palavra negativa não encontrada na campanha durante rollback")

	return nil
}
