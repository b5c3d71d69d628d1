package adsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/domain"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/pkg/utils"
)

type Client interface {
	GetCampaign(ctx context.Context, campaignID string) (*adsdomain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID, status string) error
	GetKeyword(ctx context.Context, keywordID string) (*adsdomain.Keyword, error)
	UpdateKeywordBid(ctx context.Context, keywordID string, bid float64) error
	MoveKeyword(ctx context.Context, keywordID, targetCampaignID string) error
	ListNegativeKeywords(ctx context.Context, campaignID string) ([]adsdomain.NegativeKeyword, error)
	CreateNegativeKeyword(ctx context.Context, campaignID, text, matchType string) (string, error)
	DeleteNegativeKeyword(ctx context.Context, negativeKeywordID string) error
}

type AdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Ads.RequestTimeoutSeconds) * time.Second

	return &AdsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// doGet executa uma requisição GET contra a API da plataforma
func (c *AdsClient) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Add("access_token", c.Cfg.Ads.AccessToken)
	fullURL := c.Cfg.Ads.URL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	return c.do(req)
}

// doPost executa uma requisição POST com corpo form-encoded, o formato que a
// API da plataforma aceita para mutações
func (c *AdsClient) doPost(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Add("access_token", c.Cfg.Ads.AccessToken)
	fullURL := c.Cfg.Ads.URL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// doDelete executa uma requisição DELETE contra a API da plataforma
func (c *AdsClient) doDelete(ctx context.Context, path string) ([]byte, error) {
	params := url.Values{}
	params.Add("access_token", c.Cfg.Ads.AccessToken)
	fullURL := c.Cfg.Ads.URL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	return c.do(req)
}

func (c *AdsClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", req.URL.Path).Error("Erro ao fazer a requisição para a plataforma de anúncios")
		return nil, &adsdomain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro da API em RemoteError
func (c *AdsClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Resposta de erro da plataforma de anúncios: %s", utils.PrettyJson(body))
	}

	var errorResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		// Corpo de erro fora do formato esperado: classifica apenas pelo status
		return nil, &adsdomain.RemoteError{
			Message:    strings.TrimSpace(string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	return nil, &adsdomain.RemoteError{
		Code:       errorResp.Error.Code,
		Subcode:    errorResp.Error.ErrorSubcode,
		Message:    errorResp.Error.Message,
		StatusCode: resp.StatusCode,
	}
}
