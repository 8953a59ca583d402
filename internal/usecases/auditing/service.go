package auditing

import (
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

// Service executa a sequência fixa de consultas da auditoria e delega a
// dobra das linhas cruas ao agregador
type Service struct {
	cfg     *config.Config
	fetcher Fetcher
}

func NewService(cfg *config.Config, fetcher Fetcher) Auditor {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

func (s *Service) ListProperties(session *domain.Session) ([]domain.PropertyOption, error) {
	return s.fetcher.ListProperties(session)
}

// RunAudit roda as consultas na ordem fixa do relatório. Cada chamada é
// síncrona e bloqueante; a primeira falha aborta a execução inteira e nenhum
// resumo parcial é devolvido ao usuário.
func (s *Service) RunAudit(session *domain.Session, propertyID string) (*domain.AuditResult, error) {
	logger := logrus.WithField("property_id", propertyID)
	logger.Info("audit: iniciando auditoria da propriedade")

	// 1. Linha base de sessões e usuários
	baseline, err := s.fetcher.FetchMetricReport(session, propertyID,
		domain.NewMetricQuery([]string{"sessions", "totalUsers"}, nil, nil))
	if err != nil {
		return nil, err
	}

	// 2. Sessões por agrupamento de canal
	channels, err := s.fetcher.FetchMetricReport(session, propertyID,
		domain.NewMetricQuery([]string{"sessions"}, []string{"defaultChannelGrouping"}, nil))
	if err != nil {
		return nil, err
	}

	// 3. Detalhamento por meio de sessão do tráfego Unassigned
	mediums, err := s.fetcher.FetchMetricReport(session, propertyID,
		domain.NewMetricQuery(
			[]string{"sessions"},
			[]string{"sessionMedium"},
			domain.StringEqualsFilter("defaultChannelGrouping", domain.ChannelUnassigned),
		))
	if err != nil {
		return nil, err
	}

	// 4. Transações e receita agregadas
	transactions, err := s.fetcher.FetchMetricReport(session, propertyID,
		domain.NewMetricQuery([]string{"transactions", "totalRevenue"}, nil, nil))
	if err != nil {
		return nil, err
	}

	// 5. IDs de transação com mais de uma ocorrência. O filtro numérico faz a
	// seleção; o agregador apenas copia os pares devolvidos.
	duplicates, err := s.fetcher.FetchMetricReport(session, propertyID,
		domain.NewMetricQuery(
			[]string{"transactions"},
			[]string{"transactionId"},
			domain.NumericGreaterThanFilter("transactions", 1),
		))
	if err != nil {
		return nil, err
	}

	// 6. Uma consulta independente de eventCount por estágio do funil
	funnelRows := make(map[string][]domain.MetricRow, 4)
	for _, stage := range domain.FunnelStages() {
		rows, err := s.fetcher.FetchMetricReport(session, propertyID,
			domain.NewMetricQuery(
				[]string{"eventCount"},
				nil,
				domain.StringEqualsFilter("eventName", stage),
			))
		if err != nil {
			return nil, err
		}
		funnelRows[stage] = rows
	}

	result, err := Aggregate(propertyID, time.Now(), AggregateInput{
		Baseline:          baseline,
		Channels:          channels,
		UnassignedMediums: mediums,
		Transactions:      transactions,
		DuplicateRows:     duplicates,
		FunnelRows:        funnelRows,
	})
	if err != nil {
		logger.WithError(err).Error("audit: falha na agregação do resultado")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"total_sessions": result.Summary.TotalSessions,
		"total_users":    result.Summary.TotalUsers,
		"duplicates":     len(result.Duplicates),
	}).Info("audit: auditoria concluída com sucesso")

	return result, nil
}
