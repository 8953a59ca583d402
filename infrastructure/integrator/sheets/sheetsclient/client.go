package sheetsclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource fornece um token de acesso válido para a sessão de planilhas
type TokenSource interface {
	AccessToken(session *domain.Session) (string, error)
}

// Client é o contrato de escrita contra a API de planilhas. Nenhuma operação
// é repetida automaticamente: cada falha é terminal para a ação que a causou.
type Client interface {
	// AddSheet cria uma nova aba nomeada na planilha de destino
	AddSheet(session *domain.Session, spreadsheetID, title string) error

	// ClearSheet limpa o conteúdo de uma aba existente
	ClearSheet(session *domain.Session, spreadsheetID, sheetName string) error

	// UpdateValues escreve a grade de valores a partir de A1 da aba indicada
	UpdateValues(session *domain.Session, spreadsheetID, sheetName string, values [][]interface{}) error
}

type SheetsClient struct {
	Cfg        *config.Config
	Tokens     TokenSource
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config, tokens TokenSource) Client {
	return &SheetsClient{
		Cfg:        cfg,
		Tokens:     tokens,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type sheetProperties struct {
	Title string `json:"title"`
}

type addSheet struct {
	Properties sheetProperties `json:"properties"`
}

type batchUpdateRequest struct {
	Requests []map[string]addSheet `json:"requests"`
}

type updateValuesRequest struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *SheetsClient) AddSheet(session *domain.Session, spreadsheetID, title string) error {
	body := batchUpdateRequest{
		Requests: []map[string]addSheet{
			{"addSheet": {Properties: sheetProperties{Title: title}}},
		},
	}

	endpoint := fmt.Sprintf("%s/spreadsheets/%s:batchUpdate", c.Cfg.Sheets.BaseURL, spreadsheetID)

	statusCode, respBody, err := c.doRequest(session, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}

	if statusCode == http.StatusOK {
		return nil
	}

	// 400 aqui significa que o destino recusou a criação da aba (título
	// duplicado ou planilha protegida); o exportador decide o fallback
	if statusCode == http.StatusBadRequest {
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": spreadsheetID,
			"title":          title,
		}).Warn("Destino recusou a criação da aba, caindo para a aba padrão")
		return ErrSheetCreationRejected
	}

	return classifyError(statusCode, respBody)
}

func (c *SheetsClient) ClearSheet(session *domain.Session, spreadsheetID, sheetName string) error {
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s:clear",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(sheetName))

	statusCode, respBody, err := c.doRequest(session, http.MethodPost, endpoint, struct{}{})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return classifyError(statusCode, respBody)
	}

	return nil
}

func (c *SheetsClient) UpdateValues(session *domain.Session, spreadsheetID, sheetName string, values [][]interface{}) error {
	rangeA1 := fmt.Sprintf("'%s'!A1", sheetName)

	body := updateValuesRequest{
		Range:          rangeA1,
		MajorDimension: "ROWS",
		Values:         values,
	}

	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(rangeA1))

	statusCode, respBody, err := c.doRequest(session, http.MethodPut, endpoint, body)
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return classifyError(statusCode, respBody)
	}

	return nil
}

func (c *SheetsClient) doRequest(session *domain.Session, method, endpoint string, payload interface{}) (int, []byte, error) {
	token, err := c.Tokens.AccessToken(session)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequest(method, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return 0, nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

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

// classifyError mapeia a resposta de erro para as classes distintas que o
// chamador conhece: destino inexistente ou escrita recusada
func classifyError(statusCode int, body []byte) error {
	if statusCode == http.StatusNotFound {
		return ErrSpreadsheetNotFound
	}

	message := fmt.Sprintf("erro na escrita da planilha: status %d", statusCode)

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	return &WriteRejectedError{StatusCode: statusCode, Message: message}
}
