package adsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
)

func (c *AdsClient) GetCampaign(ctx context.Context, campaignID string) (*adsdomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status")

	body, err := c.doGet(ctx, fmt.Sprintf("/campaigns/%s", campaignID), params)
	if err != nil {
		return nil, err
	}

	var campaign adsdomain.Campaign
	if err := json.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da campanha")
		return nil, err
	}

	return &campaign, nil
}

func (c *AdsClient) UpdateCampaignStatus(ctx context.Context, campaignID, status string) error {
	params := url.Values{}
	params.Add("status", status)

	_, err := c.doPost(ctx, fmt.Sprintf("/campaigns/%s", campaignID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"status":      status,
		}).WithError(err).Error("Erro ao atualizar status da campanha")
		return err
	}

	return nil
}
