package adsdomain

type Keyword struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	MatchType  string  `json:"match_type"`
	Bid        float64 `json:"bid"`
	CampaignID string  `json:"campaign_id"`
	Status     string  `json:"status"`
}

// KeywordSnapshot é o estado de keyword persistido como previous_state
type KeywordSnapshot struct {
	ID         string  `json:"id"`
	Text       string  `json:"text,omitempty"`
	MatchType  string  `json:"match_type,omitempty"`
	Bid        float64 `json:"bid"`
	CampaignID string  `json:"campaign_id"`
	Status     string  `json:"status,omitempty"`
}

type NegativeKeyword struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	MatchType  string `json:"match_type"`
	CampaignID string `json:"campaign_id"`
}

// NegativeKeywordSnapshot registra se a palavra negativa já existia na
// campanha antes da aplicação do item
type NegativeKeywordSnapshot struct {
	CampaignID string `json:"campaign_id"`
	Text       string `json:"text"`
	MatchType  string `json:"match_type"`
	Existed    bool   `json:"existed"`
	ExistingID string `json:"existing_id,omitempty"`
}
