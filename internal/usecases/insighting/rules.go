package insighting

import (
	"fmt"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/pkg/utils"
)

// Limiares das regras de diagnóstico. Os valores seguem o relatório original
// e são fixos; não há configuração por propriedade.
const (
	lowEngagementThreshold  = 1.5
	highUnassignedThreshold = 20.0
)

// Evaluator avalia o resultado de uma auditoria contra o catálogo de regras
type Evaluator interface {
	Evaluate(result *domain.AuditResult) []domain.Insight
}

type ruleEvaluator struct{}

func NewEvaluator() Evaluator {
	return &ruleEvaluator{}
}

// Evaluate aplica todas as regras em ordem fixa. Todas as regras que
// dispararem aparecem na lista; só quando nenhuma dispara é que o insight
// saudável é emitido.
func (e *ruleEvaluator) Evaluate(result *domain.AuditResult) []domain.Insight {
	insights := make([]domain.Insight, 0, 4)

	if result.Summary.SessionsPerUser < lowEngagementThreshold {
		insights = append(insights, domain.Insight{
			Severity: domain.InsightSeverityWarning,
			Code:     domain.InsightLowEngagement,
			Message: fmt.Sprintf("Low engagement: %s sessions per user (below %s)",
				utils.FormatFloat(result.Summary.SessionsPerUser),
				utils.FormatFloat(lowEngagementThreshold)),
		})
	}

	if result.Summary.PercentUnassigned > highUnassignedThreshold {
		insights = append(insights, domain.Insight{
			Severity: domain.InsightSeverityWarning,
			Code:     domain.InsightHighUnassignedTraffic,
			Message: fmt.Sprintf("High unassigned traffic: %s of sessions have no attributed channel",
				utils.FormatPercent(result.Summary.PercentUnassigned)),
		})
	}

	if len(result.Duplicates) > 0 {
		insights = append(insights, domain.Insight{
			Severity: domain.InsightSeverityWarning,
			Code:     domain.InsightDuplicateTransactions,
			Message: fmt.Sprintf("Duplicate transactions detected: %d transaction IDs counted more than once",
				len(result.Duplicates)),
		})
	}

	if result.Funnel.Purchase == 0 {
		insights = append(insights, domain.Insight{
			Severity: domain.InsightSeverityWarning,
			Code:     domain.InsightNoPurchaseEvents,
			Message:  "No purchase events recorded in the analysis window",
		})
	}

	if len(insights) == 0 {
		insights = append(insights, domain.Insight{
			Severity: domain.InsightSeverityHealthy,
			Code:     domain.InsightAllHealthy,
			Message:  "All audit checks passed",
		})
	}

	return insights
}
