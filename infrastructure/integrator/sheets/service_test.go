package sheets

import (
	"testing"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets/sheetsclient"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExtractSpreadsheetID(t *testing.T) {
	tests := []struct {
		name       string
		locator    string
		expectedID string
		expectErr  bool
	}{
		{
			name:       "URL completa de edição",
			locator:    "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit#gid=0",
			expectedID: "1AbC-dEf_123",
		},
		{
			name:       "URL sem sufixo",
			locator:    "https://docs.google.com/spreadsheets/d/xyz789",
			expectedID: "xyz789",
		},
		{
			name:      "URL de outro produto",
			locator:   "https://docs.google.com/document/d/abc/edit",
			expectErr: true,
		},
		{
			name:      "Texto sem URL",
			locator:   "minha planilha",
			expectErr: true,
		},
		{
			name:      "Vazio",
			locator:   "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractSpreadsheetID(tt.locator)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrMalformedLocator)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func exportResult() *domain.AuditResult {
	return &domain.AuditResult{
		PropertyID:  "123456",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Summary: domain.AuditSummary{
			TotalSessions:      10000,
			TotalUsers:         4000,
			SessionsPerUser:    2.5,
			UnassignedSessions: 500,
			PercentUnassigned:  5.0,
			TotalTransactions:  320,
			TotalRevenue:       15750.5,
		},
		Funnel: domain.FunnelSummary{
			ViewItem:       8000,
			AddToCart:      2000,
			BeginCheckout:  1000,
			Purchase:       320,
			ViewToCart:     25.0,
			ViewToPurchase: 4.0,
		},
	}
}

func TestExportAuditResult_CreatesTimestampedSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	session := &domain.Session{ID: "sess", Kind: domain.SessionKindSheets}
	locator := "https://docs.google.com/spreadsheets/d/sheet-id-1/edit"

	var createdSheet string
	mockClient.EXPECT().
		AddSheet(session, "sheet-id-1", gomock.Any()).
		DoAndReturn(func(_ *domain.Session, _ string, title string) error {
			createdSheet = title
			return nil
		})

	mockClient.EXPECT().
		UpdateValues(session, "sheet-id-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *domain.Session, _ string, sheetName string, values [][]interface{}) error {
			assert.Equal(t, createdSheet, sheetName)
			assert.NotEmpty(t, values)
			// A primeira célula é o título do relatório com o nome da aba
			assert.Contains(t, values[0][0], "GA4 Audit V2 Results")
			return nil
		})

	sheetName, err := integrator.ExportAuditResult(session, locator, exportResult())
	require.NoError(t, err)
	assert.Equal(t, createdSheet, sheetName)
	assert.Contains(t, sheetName, "GA4 Audit V2 - ")
}

func TestExportAuditResult_FallbackToDefaultSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	session := &domain.Session{ID: "sess", Kind: domain.SessionKindSheets}

	// Destino recusa a aba nova: a padrão é limpa e reutilizada
	gomock.InOrder(
		mockClient.EXPECT().
			AddSheet(session, "sheet-id-2", gomock.Any()).
			Return(sheetsclient.ErrSheetCreationRejected),
		mockClient.EXPECT().
			ClearSheet(session, "sheet-id-2", "Sheet1").
			Return(nil),
		mockClient.EXPECT().
			UpdateValues(session, "sheet-id-2", "Sheet1", gomock.Any()).
			Return(nil),
	)

	sheetName, err := integrator.ExportAuditResult(session,
		"https://docs.google.com/spreadsheets/d/sheet-id-2/edit", exportResult())
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheetName)
}

func TestExportAuditResult_MalformedLocatorBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada de rede acontece com locator inválido
	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	sheetName, err := integrator.ExportAuditResult(&domain.Session{}, "not-a-url", exportResult())
	assert.Empty(t, sheetName)
	assert.ErrorIs(t, err, ErrMalformedLocator)
}

func TestExportAuditResult_NotFoundPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	session := &domain.Session{ID: "sess"}

	mockClient.EXPECT().
		AddSheet(session, "missing", gomock.Any()).
		Return(sheetsclient.ErrSpreadsheetNotFound)

	sheetName, err := integrator.ExportAuditResult(session,
		"https://docs.google.com/spreadsheets/d/missing/edit", exportResult())
	assert.Empty(t, sheetName)
	assert.ErrorIs(t, err, sheetsclient.ErrSpreadsheetNotFound)
}

func TestBuildSheetValues_Sections(t *testing.T) {
	result := exportResult()
	result.UnassignedMediums = []domain.MediumSessions{
		{Medium: "(none)", Sessions: 400},
	}
	result.Duplicates = []domain.DuplicateTransaction{
		{TransactionID: "TXN-001", Count: 3},
	}

	values := buildSheetValues("GA4 Audit V2 - 20250601_120000", result)

	flat := make([]string, 0, len(values))
	for _, row := range values {
		if len(row) > 0 {
			if s, ok := row[0].(string); ok {
				flat = append(flat, s)
			}
		}
	}

	assert.Contains(t, flat, "1. SESSIONS AND USERS ANALYSIS (Last 90 Days)")
	assert.Contains(t, flat, "2. UNASSIGNED TRAFFIC ANALYSIS")
	assert.Contains(t, flat, "Session Medium Breakdown (Unassigned):")
	assert.Contains(t, flat, "- (none)")
	assert.Contains(t, flat, "3. TRANSACTIONS AND REVENUE ANALYSIS")
	assert.Contains(t, flat, "Duplicate Transaction IDs:")
	assert.Contains(t, flat, "- TXN-001")
	assert.Contains(t, flat, "4. CONVERSION FUNNEL ANALYSIS")
	assert.Contains(t, flat, "FUNNEL CONVERSION RATES:")
}

func TestBuildSheetValues_NoFunnelRatesWithoutViews(t *testing.T) {
	result := exportResult()
	result.Funnel = domain.FunnelSummary{}

	values := buildSheetValues("Sheet1", result)

	for _, row := range values {
		if len(row) > 0 {
			if s, ok := row[0].(string); ok {
				assert.NotEqual(t, "FUNNEL CONVERSION RATES:", s)
			}
		}
	}
}
