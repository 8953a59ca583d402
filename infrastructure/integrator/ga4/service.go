package ga4

import (
	"fmt"

	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/ga4client"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

// GA4Integrator expõe o fetcher de métricas para os casos de uso, aplicando a
// janela de auditoria configurada quando a consulta não define uma
type GA4Integrator struct {
	cfg    *config.Config
	Client ga4client.Client
}

func New(cfg *config.Config, client ga4client.Client) *GA4Integrator {
	return &GA4Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchMetricReport executa uma consulta de métricas para a propriedade.
// Bloqueia até a resposta ou falha de rede; não há retry.
func (s *GA4Integrator) FetchMetricReport(session *domain.Session, propertyID string, query domain.MetricQuery) ([]domain.MetricRow, error) {
	if query.DateRangeStart == "" {
		query.DateRangeStart = fmt.Sprintf("%ddaysAgo", s.cfg.Analytics.LookbackDays)
	}

	rows, err := s.Client.RunReport(session, propertyID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"metrics":     query.Metrics,
			"error":       err.Error(),
		}).Error("audit: falha ao consultar métricas na API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"metrics":     query.Metrics,
		"rows":        len(rows),
	}).Debug("audit: consulta de métricas concluída")

	return rows, nil
}

// ListProperties lista as propriedades GA4 que a sessão pode auditar
func (s *GA4Integrator) ListProperties(session *domain.Session) ([]domain.PropertyOption, error) {
	options, err := s.Client.ListAccountSummaries(session)
	if err != nil {
		logrus.WithError(err).Error("audit: falha ao listar propriedades disponíveis")
		return nil, err
	}

	return options, nil
}
