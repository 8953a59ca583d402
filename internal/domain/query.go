package domain

// FilterKind indica o tipo de predicado aplicado a um campo da consulta
type FilterKind int

const (
	// FilterStringEquals compara o valor do campo com uma string exata
	FilterStringEquals FilterKind = iota
	// FilterNumericGreaterThan compara o valor numérico do campo com um limite
	FilterNumericGreaterThan
)

// DimensionFilter representa um único predicado de igualdade ou comparação
// numérica sobre um campo do relatório. A API aceita apenas um filtro por
// consulta neste serviço.
type DimensionFilter struct {
	FieldName string
	Kind      FilterKind
	Value     string
	Threshold int64
}

// StringEqualsFilter cria um filtro de igualdade de string sobre um campo
func StringEqualsFilter(fieldName, value string) *DimensionFilter {
	return &DimensionFilter{
		FieldName: fieldName,
		Kind:      FilterStringEquals,
		Value:     value,
	}
}

// NumericGreaterThanFilter cria um filtro de comparação numérica sobre um campo
func NumericGreaterThanFilter(fieldName string, threshold int64) *DimensionFilter {
	return &DimensionFilter{
		FieldName: fieldName,
		Kind:      FilterNumericGreaterThan,
		Threshold: threshold,
	}
}

// MetricQuery descreve uma consulta de relatório: métricas na ordem
// solicitada, dimensões opcionais, um filtro opcional e o início da janela
// de datas. O fim da janela é sempre "today". Imutável após construída.
type MetricQuery struct {
	Metrics        []string
	Dimensions     []string
	Filter         *DimensionFilter
	DateRangeStart string
}

// DefaultDateRangeStart é a janela padrão de auditoria (últimos 90 dias)
const DefaultDateRangeStart = "90daysAgo"

// NewMetricQuery cria uma consulta com a janela padrão de 90 dias
func NewMetricQuery(metrics []string, dimensions []string, filter *DimensionFilter) MetricQuery {
	return MetricQuery{
		Metrics:        metrics,
		Dimensions:     dimensions,
		Filter:         filter,
		DateRangeStart: DefaultDateRangeStart,
	}
}

// MetricRow é uma combinação de valores de dimensão pareada com os valores
// numéricos das métricas, na mesma ordem da consulta que a produziu
type MetricRow struct {
	DimensionValues []string
	MetricValues    []float64
}

// PropertyOption representa uma propriedade GA4 disponível para o usuário,
// achatada a partir da listagem de contas da Admin API
type PropertyOption struct {
	AccountName  string `json:"account_name"`
	PropertyName string `json:"property_name"`
	PropertyID   string `json:"property_id"`
}
