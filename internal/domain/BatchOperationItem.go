package domain

import (
	"encoding/json"
	"time"
)

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeKeyword  EntityType = "keyword"
	EntityTypeAdGroup  EntityType = "ad_group"
)

type BatchItemStatus string

const (
	BatchItemStatusPending    BatchItemStatus = "pending"
	BatchItemStatusSuccess    BatchItemStatus = "success"
	BatchItemStatusFailed     BatchItemStatus = "failed"
	BatchItemStatusRolledBack BatchItemStatus = "rolled_back"
)

type BatchOperationItem struct {
	ID           string          `json:"id"`
	BatchID      string          `json:"batch_id"`
	EntityType   EntityType      `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	EntityName   string          `json:"entity_name"`
	Change       ProposedChange  `json:"change"`
	Status       BatchItemStatus `json:"status"`
	ErrorMessage *string         `json:"error_message,omitempty"`

	// PreviousState é o snapshot do estado remoto capturado imediatamente
	// antes da mutação. É a entrada obrigatória do rollback.
	PreviousState json.RawMessage `json:"previous_state,omitempty"`

	AppliedAt    *time.Time `json:"applied_at,omitempty"`
	RolledBackAt *time.Time `json:"rolled_back_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateBatchItemRequest struct {
	EntityType EntityType     `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	EntityName string         `json:"entity_name"`
	Change     ProposedChange `json:"change"`
}

// ProposedChange é a variante de mudança proposta de um item. Exatamente um
// dos campos deve estar preenchido, e ele deve corresponder ao operation_type
// do lote dono do item.
type ProposedChange struct {
	NegativeKeyword  *NegativeKeywordChange  `json:"negative_keyword,omitempty"`
	BidAdjustment    *BidAdjustmentChange    `json:"bid_adjustment,omitempty"`
	KeywordMigration *KeywordMigrationChange `json:"keyword_migration,omitempty"`
	CampaignStatus   *CampaignStatusChange   `json:"campaign_status,omitempty"`
}

type NegativeKeywordChange struct {
	Keyword   string `json:"negative_keyword"`
	MatchType string `json:"negative_match_type"`
}

type BidAdjustmentChange struct {
	CurrentBid float64 `json:"current_bid"`
	NewBid     float64 `json:"new_bid"`
	Reason     string  `json:"bid_change_reason,omitempty"`
}

type KeywordMigrationChange struct {
	Keyword          string `json:"keyword"`
	MatchType        string `json:"match_type"`
	SourceCampaignID string `json:"source_campaign_id"`
	TargetCampaignID string `json:"target_campaign_id"`
}

type CampaignStatusChange struct {
	CurrentStatus string `json:"current_status"`
	NewStatus     string `json:"new_status"`
}

// MatchesType verifica se a variante preenchida corresponde ao tipo de
// operação do lote
func (c ProposedChange) MatchesType(operationType BatchOperationType) bool {
	switch operationType {
	case BatchTypeNegativeKeyword:
		return c.NegativeKeyword != nil
	case BatchTypeBidAdjustment:
		return c.BidAdjustment != nil
	case BatchTypeKeywordMigration:
		return c.KeywordMigration != nil
	case BatchTypeCampaignStatus:
		return c.CampaignStatus != nil
	}
	return false
}

// VariantCount retorna quantas variantes estão preenchidas na mudança
func (c ProposedChange) VariantCount() int {
	count := 0
	if c.NegativeKeyword != nil {
		count++
	}
	if c.BidAdjustment != nil {
		count++
	}
	if c.KeywordMigration != nil {
		count++
	}
	if c.CampaignStatus != nil {
		count++
	}
	return count
}
