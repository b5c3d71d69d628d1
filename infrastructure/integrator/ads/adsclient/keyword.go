package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
)

func (c *AdsClient) GetKeyword(ctx context.Context, keywordID string) (*adsdomain.Keyword, error) {
	params := url.Values{}
	params.Add("fields", "id,text,match_type,bid,campaign_id,status")

	body, err := c.doGet(ctx, fmt.Sprintf("/keywords/%s", keywordID), params)
	if err != nil {
		return nil, err
	}

	var keyword adsdomain.Keyword
	if err := json.Unmarshal(body, &keyword); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da keyword")
		return nil, err
	}

	return &keyword, nil
}

func (c *AdsClient) UpdateKeywordBid(ctx context.Context, keywordID string, bid float64) error {
	params := url.Values{}
	params.Add("bid", strconv.FormatFloat(bid, 'f', 2, 64))

	_, err := c.doPost(ctx, fmt.Sprintf("/keywords/%s", keywordID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"keyword_id": keywordID,
			"bid":        bid,
		}).WithError(err).Error("Erro ao atualizar lance da keyword")
		return err
	}

	return nil
}

// MoveKeyword migra a keyword para outra campanha mantendo texto, match type e
// lance
func (c *AdsClient) MoveKeyword(ctx context.Context, keywordID, targetCampaignID string) error {
	params := url.Values{}
	params.Add("campaign_id", targetCampaignID)

	_, err := c.doPost(ctx, fmt.Sprintf("/keywords/%s", keywordID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"keyword_id":         keywordID,
			"target_campaign_id": targetCampaignID,
		}).WithError(err).Error("Erro ao migrar keyword de campanha")
		return err
	}

	return nil
}
