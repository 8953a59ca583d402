package auditing

import (
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/pkg/utils"
)

// AggregateInput reúne os conjuntos de linhas cruas que a sequência de
// consultas produz, na ordem em que são buscados
type AggregateInput struct {
	// Baseline é a linha agregada de sessions e totalUsers
	Baseline []domain.MetricRow
	// Channels são sessões agrupadas por defaultChannelGrouping
	Channels []domain.MetricRow
	// UnassignedMediums são sessões por sessionMedium filtradas ao canal Unassigned
	UnassignedMediums []domain.MetricRow
	// Transactions é a linha agregada de transactions e totalRevenue
	Transactions []domain.MetricRow
	// DuplicateRows são transações por transactionId já filtradas a contagens > 1
	DuplicateRows []domain.MetricRow
	// FunnelRows mapeia cada estágio do funil para as linhas da sua consulta
	FunnelRows map[string][]domain.MetricRow
}

// Aggregate dobra os conjuntos de linhas cruas no resultado da auditoria.
// Função pura: sem chamadas externas, sem estado compartilhado.
func Aggregate(propertyID string, generatedAt time.Time, in AggregateInput) (*domain.AuditResult, error) {
	summary, err := buildSummary(in)
	if err != nil {
		return nil, err
	}

	return &domain.AuditResult{
		PropertyID:        propertyID,
		GeneratedAt:       generatedAt,
		Summary:           summary,
		UnassignedMediums: buildMediumBreakdown(in.UnassignedMediums),
		Duplicates:        buildDuplicates(in.DuplicateRows),
		Funnel:            buildFunnel(in.FunnelRows),
	}, nil
}

func buildSummary(in AggregateInput) (domain.AuditSummary, error) {
	// A linha base é obrigatória: sem ela a auditoria inteira falha
	if len(in.Baseline) == 0 || len(in.Baseline[0].MetricValues) < 2 {
		return domain.AuditSummary{}, ErrMissingBaseline
	}

	totalSessions := int64(in.Baseline[0].MetricValues[0])
	totalUsers := int64(in.Baseline[0].MetricValues[1])

	sessionsPerUser := 0.0
	if totalUsers > 0 {
		sessionsPerUser = utils.RoundWithTwoDecimalPlace(float64(totalSessions) / float64(totalUsers))
	}

	// Apenas o canal literalmente "Unassigned" contribui; os demais canais
	// são ignorados e a soma deles não é validada contra a linha base
	var unassignedSessions int64
	for _, row := range in.Channels {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		if row.DimensionValues[0] == domain.ChannelUnassigned {
			unassignedSessions = int64(row.MetricValues[0])
		}
	}

	percentUnassigned := 0.0
	if totalSessions > 0 {
		percentUnassigned = utils.RoundWithTwoDecimalPlace(float64(unassignedSessions) / float64(totalSessions) * 100)
	}

	// Ausência da linha de transações é um estado zero válido, não um erro
	var totalTransactions int64
	var totalRevenue float64
	if len(in.Transactions) > 0 && len(in.Transactions[0].MetricValues) >= 2 {
		totalTransactions = int64(in.Transactions[0].MetricValues[0])
		totalRevenue = in.Transactions[0].MetricValues[1]
	}

	return domain.AuditSummary{
		TotalSessions:      totalSessions,
		TotalUsers:         totalUsers,
		SessionsPerUser:    sessionsPerUser,
		UnassignedSessions: unassignedSessions,
		PercentUnassigned:  percentUnassigned,
		TotalTransactions:  totalTransactions,
		TotalRevenue:       totalRevenue,
	}, nil
}

func buildMediumBreakdown(rows []domain.MetricRow) []domain.MediumSessions {
	breakdown := make([]domain.MediumSessions, 0, len(rows))
	for _, row := range rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		breakdown = append(breakdown, domain.MediumSessions{
			Medium:   row.DimensionValues[0],
			Sessions: int64(row.MetricValues[0]),
		})
	}
	return breakdown
}

// buildDuplicates copia os pares (id, contagem) recebidos. O fetcher já
// filtrou a contagens maiores que 1; nenhuma reavaliação do limiar acontece
// aqui, e zero linhas significa simplesmente nenhuma duplicata.
func buildDuplicates(rows []domain.MetricRow) []domain.DuplicateTransaction {
	duplicates := make([]domain.DuplicateTransaction, 0, len(rows))
	for _, row := range rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		duplicates = append(duplicates, domain.DuplicateTransaction{
			TransactionID: row.DimensionValues[0],
			Count:         int64(row.MetricValues[0]),
		})
	}
	return duplicates
}

func buildFunnel(rows map[string][]domain.MetricRow) domain.FunnelSummary {
	counts := make(map[string]int64, 4)
	for _, stage := range domain.FunnelStages() {
		// Estágio sem linha devolvida conta como zero, não como erro
		stageRows := rows[stage]
		if len(stageRows) > 0 && len(stageRows[0].MetricValues) > 0 {
			counts[stage] = int64(stageRows[0].MetricValues[0])
		}
	}

	funnel := domain.FunnelSummary{
		ViewItem:      counts[domain.FunnelStageViewItem],
		AddToCart:     counts[domain.FunnelStageAddToCart],
		BeginCheckout: counts[domain.FunnelStageBeginCheckout],
		Purchase:      counts[domain.FunnelStagePurchase],
	}

	// Cada taxa usa o estágio anterior como denominador; a taxa geral divide
	// sempre pelo primeiro estágio. As consultas são independentes, então
	// contagens podem crescer entre estágios e taxas acima de 100% são válidas.
	funnel.ViewToCart = conversionRate(funnel.AddToCart, funnel.ViewItem)
	funnel.CartToCheckout = conversionRate(funnel.BeginCheckout, funnel.AddToCart)
	funnel.CheckoutToPurchase = conversionRate(funnel.Purchase, funnel.BeginCheckout)
	funnel.ViewToPurchase = conversionRate(funnel.Purchase, funnel.ViewItem)

	return funnel
}

func conversionRate(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(numerator) / float64(denominator) * 100)
}
