package ga4client

import (
	"fmt"
	"net/http"
	"strconv"

	ga4domain "github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

// buildRunReportRequest monta o corpo do runReport a partir da consulta:
// janela fixa de datas (início relativo até "today"), métricas na ordem
// solicitada, dimensões opcionais e no máximo um filtro
func buildRunReportRequest(query domain.MetricQuery) *ga4domain.RunReportRequest {
	start := query.DateRangeStart
	if start == "" {
		start = domain.DefaultDateRangeStart
	}

	req := &ga4domain.RunReportRequest{
		DateRanges: []ga4domain.DateRange{{StartDate: start, EndDate: "today"}},
	}

	for _, m := range query.Metrics {
		req.Metrics = append(req.Metrics, ga4domain.Metric{Name: m})
	}

	for _, d := range query.Dimensions {
		req.Dimensions = append(req.Dimensions, ga4domain.Dimension{Name: d})
	}

	if query.Filter != nil {
		filter := &ga4domain.Filter{FieldName: query.Filter.FieldName}

		switch query.Filter.Kind {
		case domain.FilterNumericGreaterThan:
			filter.NumericFilter = &ga4domain.NumericFilter{
				Operation: "GREATER_THAN",
				Value:     ga4domain.NumericValue{Int64Value: strconv.FormatInt(query.Filter.Threshold, 10)},
			}
		default:
			filter.StringFilter = &ga4domain.StringFilter{Value: query.Filter.Value}
		}

		req.DimensionFilter = &ga4domain.FilterExpression{Filter: filter}
	}

	return req
}

func (c *GA4Client) RunReport(session *domain.Session, propertyID string, query domain.MetricQuery) ([]domain.MetricRow, error) {
	body, err := json.Marshal(buildRunReportRequest(query))
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar consulta: %w", err)
	}

	url := fmt.Sprintf("%s/properties/%s:runReport", c.Cfg.Analytics.DataBaseURL, propertyID)

	statusCode, respBody, err := c.doRequest(session, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	var response ga4domain.RunReportResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).WithField("property_id", propertyID).Error("Erro ao decodificar resposta do runReport")
		return nil, ErrInvalidResponse
	}

	// A mensagem do envelope de erro é repassada sem alteração ao chamador
	if response.Error != nil {
		return nil, &APIError{StatusCode: response.Error.Code, Message: response.Error.Message}
	}

	if statusCode != http.StatusOK {
		return nil, &APIError{StatusCode: statusCode, Message: fmt.Sprintf("status inesperado da API: %d", statusCode)}
	}

	return parseRows(response.Rows)
}

// parseRows valida e converte as linhas de fio para o tipo interno. Valor de
// métrica que não é numérico é payload malformado, não erro silencioso.
func parseRows(rows []ga4domain.Row) ([]domain.MetricRow, error) {
	parsed := make([]domain.MetricRow, 0, len(rows))

	for _, row := range rows {
		metricRow := domain.MetricRow{
			DimensionValues: make([]string, 0, len(row.DimensionValues)),
			MetricValues:    make([]float64, 0, len(row.MetricValues)),
		}

		for _, dv := range row.DimensionValues {
			metricRow.DimensionValues = append(metricRow.DimensionValues, dv.Value)
		}

		for _, mv := range row.MetricValues {
			value, err := strconv.ParseFloat(mv.Value, 64)
			if err != nil {
				logrus.WithField("value", mv.Value).Warn("Valor de métrica não numérico na resposta")
				return nil, ErrInvalidResponse
			}
			metricRow.MetricValues = append(metricRow.MetricValues, value)
		}

		parsed = append(parsed, metricRow)
	}

	return parsed, nil
}
