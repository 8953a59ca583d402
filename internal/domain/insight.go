package domain

// Severidade de um insight gerado sobre o resumo da auditoria
const (
	InsightSeverityWarning = "warning"
	InsightSeverityHealthy = "healthy"
)

// Códigos fixos dos insights, na ordem de avaliação das regras
const (
	InsightLowEngagement         = "low_engagement"
	InsightHighUnassignedTraffic = "high_unassigned_traffic"
	InsightDuplicateTransactions = "duplicate_transactions"
	InsightNoPurchaseEvents      = "no_purchase_events"
	InsightAllHealthy            = "all_healthy"
)

// Insight é um aviso ou confirmação produzido pelas regras de limiar sobre o
// resumo completo da auditoria
type Insight struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}
