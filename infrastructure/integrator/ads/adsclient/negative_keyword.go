package adsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
)

type responseNegativeKeywords struct {
	Data []adsdomain.NegativeKeyword `json:"data"`
}

type responseCreated struct {
	ID string `json:"id"`
}

// TODO adicionar loop de paginação para campanhas com muitas palavras negativas
func (c *AdsClient) ListNegativeKeywords(ctx context.Context, campaignID string) ([]adsdomain.NegativeKeyword, error) {
	params := url.Values{}
	params.Add("fields", "id,text,match_type,campaign_id")

	body, err := c.doGet(ctx, fmt.Sprintf("/campaigns/%s/negative_keywords", campaignID), params)
	if err != nil {
		return nil, err
	}

	var response responseNegativeKeywords
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de palavras negativas")
		return nil, err
	}

	return response.Data, nil
}

func (c *AdsClient) CreateNegativeKeyword(ctx context.Context, campaignID, text, matchType string) (string, error) {
	params := url.Values{}
	params.Add("text", text)
	params.Add("match_type", matchType)

	body, err := c.doPost(ctx, fmt.Sprintf("/campaigns/%s/negative_keywords", campaignID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"text":        text,
			"match_type":  matchType,
		}).WithError(err).Error("Erro ao criar palavra negativa")
		return "", err
	}

	var response responseCreated
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("resposta de criação sem id")
	}

	return response.ID, nil
}

func (c *AdsClient) DeleteNegativeKeyword(ctx context.Context, negativeKeywordID string) error {
	_, err := c.doDelete(ctx, fmt.Sprintf("/negative_keywords/%s", negativeKeywordID))
	if err != nil {
		logrus.WithField("negative_keyword_id", negativeKeywordID).WithError(err).Error("Erro ao remover palavra negativa")
		return err
	}

	return nil
}
