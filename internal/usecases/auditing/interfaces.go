package auditing

import (
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
)

// Fetcher define a interface para obter linhas de métricas da plataforma de
// analytics. Implementada pelo integrador GA4.
type Fetcher interface {
	// FetchMetricReport executa uma consulta de relatório de forma síncrona.
	// Zero linhas é um estado válido de resposta, não uma falha.
	FetchMetricReport(session *domain.Session, propertyID string, query domain.MetricQuery) ([]domain.MetricRow, error)

	// ListProperties lista as propriedades que a sessão pode auditar
	ListProperties(session *domain.Session) ([]domain.PropertyOption, error)
}

// Auditor é a interface completa do caso de uso de auditoria
type Auditor interface {
	// RunAudit executa a sequência completa de consultas e devolve o
	// resultado agregado. A primeira falha de consulta ou agregação aborta a
	// execução inteira; nenhum resumo parcial é produzido.
	RunAudit(session *domain.Session, propertyID string) (*domain.AuditResult, error)

	// ListProperties expõe a listagem de propriedades para o handler
	ListProperties(session *domain.Session) ([]domain.PropertyOption, error)
}
