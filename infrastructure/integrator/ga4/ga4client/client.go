package ga4client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource fornece um token de acesso válido para a sessão, aplicando a
// política de refresh único antes de cada chamada
type TokenSource interface {
	AccessToken(session *domain.Session) (string, error)
}

// Client é o contrato do fetcher de métricas contra a API do GA4
type Client interface {
	// RunReport executa uma consulta de relatório de forma síncrona e devolve
	// as linhas cruas. Zero linhas é um estado válido, não um erro.
	RunReport(session *domain.Session, propertyID string, query domain.MetricQuery) ([]domain.MetricRow, error)

	// ListAccountSummaries lista as propriedades GA4 acessíveis pela sessão
	ListAccountSummaries(session *domain.Session) ([]domain.PropertyOption, error)
}

type GA4Client struct {
	Cfg        *config.Config
	Tokens     TokenSource
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, tokens TokenSource) Client {
	return &GA4Client{
		Cfg:        cfg,
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// doRequest executa uma chamada autenticada e devolve o corpo e o status.
// O token é validado (e renovado uma única vez, se preciso) antes do envio.
func (c *GA4Client) doRequest(session *domain.Session, method, url string, body []byte) (int, []byte, error) {
	token, err := c.Tokens.AccessToken(session)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return 0, nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return resp.StatusCode, respBody, nil
}
