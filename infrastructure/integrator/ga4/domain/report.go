package domain

// Tipos de fio da API de dados do GA4 (runReport). O parsing para os tipos
// do domínio interno acontece no client, com validação na borda.

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Metric struct {
	Name string `json:"name"`
}

type Dimension struct {
	Name string `json:"name"`
}

type StringFilter struct {
	Value string `json:"value"`
}

type NumericValue struct {
	Int64Value string `json:"int64Value"`
}

type NumericFilter struct {
	Operation string       `json:"operation"`
	Value     NumericValue `json:"value"`
}

// Filter é o predicado único sobre um campo, de igualdade de string ou
// comparação numérica
type Filter struct {
	FieldName     string         `json:"fieldName"`
	StringFilter  *StringFilter  `json:"stringFilter,omitempty"`
	NumericFilter *NumericFilter `json:"numericFilter,omitempty"`
}

type FilterExpression struct {
	Filter *Filter `json:"filter"`
}

type RunReportRequest struct {
	DateRanges      []DateRange       `json:"dateRanges"`
	Metrics         []Metric          `json:"metrics"`
	Dimensions      []Dimension       `json:"dimensions,omitempty"`
	DimensionFilter *FilterExpression `json:"dimensionFilter,omitempty"`
}

type DimensionValue struct {
	Value string `json:"value"`
}

type MetricValue struct {
	Value string `json:"value"`
}

type Row struct {
	DimensionValues []DimensionValue `json:"dimensionValues"`
	MetricValues    []MetricValue    `json:"metricValues"`
}

// ErrorEnvelope é o envelope de erro padrão das APIs do Google
type ErrorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type RunReportResponse struct {
	Rows  []Row          `json:"rows"`
	Error *ErrorEnvelope `json:"error,omitempty"`
}

// Tipos de fio da Admin API (accountSummaries), usados para listar as
// propriedades disponíveis para o usuário autorizado

type PropertySummary struct {
	Property    string `json:"property"`
	DisplayName string `json:"displayName"`
}

type AccountSummary struct {
	DisplayName       string            `json:"displayName"`
	PropertySummaries []PropertySummary `json:"propertySummaries"`
}

type AccountSummariesResponse struct {
	AccountSummaries []AccountSummary `json:"accountSummaries"`
	Error            *ErrorEnvelope   `json:"error,omitempty"`
}
