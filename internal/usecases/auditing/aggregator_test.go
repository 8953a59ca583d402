package auditing

import (
	"testing"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineRow(sessions, users float64) []domain.MetricRow {
	return []domain.MetricRow{{MetricValues: []float64{sessions, users}}}
}

func TestAggregate(t *testing.T) {
	generatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    AggregateInput
		validate func(t *testing.T, result *domain.AuditResult)
	}{
		{
			name: "Propriedade saudável com funil completo",
			input: AggregateInput{
				Baseline: baselineRow(10000, 4000),
				Channels: []domain.MetricRow{
					{DimensionValues: []string{"Organic Search"}, MetricValues: []float64{6000}},
					{DimensionValues: []string{"Unassigned"}, MetricValues: []float64{500}},
					{DimensionValues: []string{"Direct"}, MetricValues: []float64{3500}},
				},
				UnassignedMediums: []domain.MetricRow{
					{DimensionValues: []string{"(none)"}, MetricValues: []float64{400}},
					{DimensionValues: []string{"referral"}, MetricValues: []float64{100}},
				},
				Transactions: []domain.MetricRow{
					{MetricValues: []float64{320, 15750.499}},
				},
				FunnelRows: map[string][]domain.MetricRow{
					domain.FunnelStageViewItem:      {{MetricValues: []float64{8000}}},
					domain.FunnelStageAddToCart:     {{MetricValues: []float64{2000}}},
					domain.FunnelStageBeginCheckout: {{MetricValues: []float64{1000}}},
					domain.FunnelStagePurchase:      {{MetricValues: []float64{320}}},
				},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				assert.Equal(t, int64(10000), result.Summary.TotalSessions)
				assert.Equal(t, int64(4000), result.Summary.TotalUsers)
				assert.Equal(t, 2.5, result.Summary.SessionsPerUser)
				assert.Equal(t, int64(500), result.Summary.UnassignedSessions)
				assert.Equal(t, 5.0, result.Summary.PercentUnassigned)
				assert.Equal(t, int64(320), result.Summary.TotalTransactions)
				// A receita crua é preservada; o arredondamento monetário é
				// responsabilidade da camada de exportação
				assert.Equal(t, 15750.499, result.Summary.TotalRevenue)

				require.Len(t, result.UnassignedMediums, 2)
				assert.Equal(t, "(none)", result.UnassignedMediums[0].Medium)
				assert.Equal(t, int64(400), result.UnassignedMediums[0].Sessions)

				assert.Empty(t, result.Duplicates)

				assert.Equal(t, int64(8000), result.Funnel.ViewItem)
				assert.Equal(t, 25.0, result.Funnel.ViewToCart)
				assert.Equal(t, 50.0, result.Funnel.CartToCheckout)
				assert.Equal(t, 32.0, result.Funnel.CheckoutToPurchase)
				assert.Equal(t, 4.0, result.Funnel.ViewToPurchase)
			},
		},
		{
			name: "Propriedade sem e-commerce e sem canal Unassigned",
			input: AggregateInput{
				Baseline: baselineRow(1200, 1000),
				Channels: []domain.MetricRow{
					{DimensionValues: []string{"Direct"}, MetricValues: []float64{1200}},
				},
				FunnelRows: map[string][]domain.MetricRow{},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				assert.Equal(t, 1.2, result.Summary.SessionsPerUser)
				assert.Equal(t, int64(0), result.Summary.UnassignedSessions)
				assert.Equal(t, 0.0, result.Summary.PercentUnassigned)
				// Linha de transações ausente é estado zero, não erro
				assert.Equal(t, int64(0), result.Summary.TotalTransactions)
				assert.Equal(t, 0.0, result.Summary.TotalRevenue)

				// Funil inteiro zerado: todas as taxas ficam em zero
				assert.Equal(t, int64(0), result.Funnel.ViewItem)
				assert.Equal(t, 0.0, result.Funnel.ViewToCart)
				assert.Equal(t, 0.0, result.Funnel.ViewToPurchase)
			},
		},
		{
			name: "Estágio intermediário zerado não zera as taxas seguintes",
			input: AggregateInput{
				Baseline: baselineRow(500, 500),
				FunnelRows: map[string][]domain.MetricRow{
					domain.FunnelStageViewItem: {{MetricValues: []float64{1000}}},
					domain.FunnelStagePurchase: {{MetricValues: []float64{50}}},
				},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				// add_to_cart zerado: taxa do par com denominador zero é zero
				assert.Equal(t, 0.0, result.Funnel.ViewToCart)
				assert.Equal(t, 0.0, result.Funnel.CartToCheckout)
				assert.Equal(t, 0.0, result.Funnel.CheckoutToPurchase)
				// A taxa geral usa o primeiro estágio, que tem dados
				assert.Equal(t, 5.0, result.Funnel.ViewToPurchase)
			},
		},
		{
			name: "Contagens podem crescer entre consultas e taxas passam de 100%",
			input: AggregateInput{
				Baseline: baselineRow(100, 100),
				FunnelRows: map[string][]domain.MetricRow{
					domain.FunnelStageViewItem:  {{MetricValues: []float64{100}}},
					domain.FunnelStageAddToCart: {{MetricValues: []float64{150}}},
				},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				assert.Equal(t, 150.0, result.Funnel.ViewToCart)
			},
		},
		{
			name: "Duplicatas são copiadas sem reavaliar o limiar",
			input: AggregateInput{
				Baseline: baselineRow(100, 50),
				DuplicateRows: []domain.MetricRow{
					{DimensionValues: []string{"TXN-001"}, MetricValues: []float64{3}},
					{DimensionValues: []string{"TXN-002"}, MetricValues: []float64{2}},
				},
				FunnelRows: map[string][]domain.MetricRow{},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				require.Len(t, result.Duplicates, 2)
				assert.Equal(t, "TXN-001", result.Duplicates[0].TransactionID)
				assert.Equal(t, int64(3), result.Duplicates[0].Count)
				assert.Equal(t, "TXN-002", result.Duplicates[1].TransactionID)
				assert.Equal(t, int64(2), result.Duplicates[1].Count)
			},
		},
		{
			name: "Linhas malformadas no detalhamento de meios são ignoradas",
			input: AggregateInput{
				Baseline: baselineRow(100, 50),
				UnassignedMediums: []domain.MetricRow{
					{DimensionValues: []string{}, MetricValues: []float64{10}},
					{DimensionValues: []string{"email"}, MetricValues: []float64{5}},
				},
				FunnelRows: map[string][]domain.MetricRow{},
			},
			validate: func(t *testing.T, result *domain.AuditResult) {
				require.Len(t, result.UnassignedMediums, 1)
				assert.Equal(t, "email", result.UnassignedMediums[0].Medium)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Aggregate("123456", generatedAt, tt.input)
			require.NoError(t, err)
			assert.Equal(t, "123456", result.PropertyID)
			assert.Equal(t, generatedAt, result.GeneratedAt)
			tt.validate(t, result)
		})
	}
}

func TestAggregate_MissingBaseline(t *testing.T) {
	tests := []struct {
		name     string
		baseline []domain.MetricRow
	}{
		{name: "Sem linha base", baseline: nil},
		{name: "Linha base com menos de duas métricas", baseline: []domain.MetricRow{{MetricValues: []float64{100}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Aggregate("123456", time.Now(), AggregateInput{Baseline: tt.baseline})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrMissingBaseline)
		})
	}
}
