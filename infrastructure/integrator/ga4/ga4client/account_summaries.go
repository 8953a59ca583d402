package ga4client

import (
	"fmt"
	"net/http"
	"strings"

	ga4domain "github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

func (c *GA4Client) ListAccountSummaries(session *domain.Session) ([]domain.PropertyOption, error) {
	url := fmt.Sprintf("%s/accountSummaries", c.Cfg.Analytics.AdminBaseURL)

	statusCode, respBody, err := c.doRequest(session, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var response ga4domain.AccountSummariesResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de accountSummaries")
		return nil, ErrInvalidResponse
	}

	if response.Error != nil {
		return nil, &APIError{StatusCode: response.Error.Code, Message: response.Error.Message}
	}

	if statusCode != http.StatusOK {
		return nil, &APIError{StatusCode: statusCode, Message: fmt.Sprintf("status inesperado da API: %d", statusCode)}
	}

	// Achata contas e propriedades na lista de opções exibida ao usuário
	options := make([]domain.PropertyOption, 0)
	for _, account := range response.AccountSummaries {
		accountName := account.DisplayName
		if accountName == "" {
			accountName = "Unnamed Account"
		}

		// O campo property vem como "properties/123"; só o ID numérico é
		// exposto para o usuário
		for _, property := range account.PropertySummaries {
			options = append(options, domain.PropertyOption{
				AccountName:  accountName,
				PropertyName: property.DisplayName,
				PropertyID:   strings.TrimPrefix(property.Property, "properties/"),
			})
		}
	}

	return options, nil
}
