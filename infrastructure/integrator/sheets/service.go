package sheets

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets/sheetsclient"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ErrMalformedLocator indica que a URL informada não contém um ID de
// planilha reconhecível; rejeitada antes de qualquer chamada de rede
var ErrMalformedLocator = errors.New("URL de planilha inválida")

// spreadsheetIDPattern extrai o ID embutido no locator da planilha
var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// defaultSheetName é a aba limpa quando o destino recusa criar uma nova
const defaultSheetName = "Sheet1"

// SheetsIntegrator exporta o resultado da auditoria para uma planilha de
// destino, criando uma aba nova com nome derivado do timestamp
type SheetsIntegrator struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ExtractSpreadsheetID valida o locator fornecido pelo usuário e devolve o
// ID da planilha embutido nele
func ExtractSpreadsheetID(locator string) (string, error) {
	match := spreadsheetIDPattern.FindStringSubmatch(locator)
	if match == nil {
		return "", ErrMalformedLocator
	}
	return match[1], nil
}

// ExportAuditResult escreve o resultado nas seções fixas da aba de destino e
// devolve o nome da aba criada (ou da aba padrão, no fallback). Nenhuma
// falha é repetida automaticamente.
func (s *SheetsIntegrator) ExportAuditResult(session *domain.Session, locator string, result *domain.AuditResult) (string, error) {
	spreadsheetID, err := ExtractSpreadsheetID(locator)
	if err != nil {
		return "", err
	}

	sheetName := fmt.Sprintf("GA4 Audit V2 - %s", time.Now().Format("20060102_150405"))

	err = s.Client.AddSheet(session, spreadsheetID, sheetName)
	if err != nil {
		if !errors.Is(err, sheetsclient.ErrSheetCreationRejected) {
			return "", err
		}

		// Fallback: o destino recusou a aba nova, limpa e reutiliza a padrão
		sheetName = defaultSheetName
		if err := s.Client.ClearSheet(session, spreadsheetID, sheetName); err != nil {
			return "", err
		}
	}

	values := buildSheetValues(sheetName, result)

	if err := s.Client.UpdateValues(session, spreadsheetID, sheetName, values); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": spreadsheetID,
		"sheet_name":     sheetName,
		"rows":           len(values),
	}).Info("export: auditoria exportada para a planilha")

	return sheetName, nil
}

// buildSheetValues monta a grade de células com o layout fixo de seções
func buildSheetValues(sheetName string, result *domain.AuditResult) [][]interface{} {
	values := [][]interface{}{
		{fmt.Sprintf("GA4 Audit V2 Results - %s", sheetName)},
		{fmt.Sprintf("Generated: %s", result.GeneratedAt.Format("2006-01-02 15:04:05"))},
		{},
		{"1. SESSIONS AND USERS ANALYSIS (Last 90 Days)"},
		{"Metric", "Value"},
		{"Total Sessions", result.Summary.TotalSessions},
		{"Total Users", result.Summary.TotalUsers},
		{"Sessions per User", result.Summary.SessionsPerUser},
		{},
		{"2. UNASSIGNED TRAFFIC ANALYSIS"},
		{"Unassigned Sessions", result.Summary.UnassignedSessions},
		{"Percent of Total Sessions", utils.FormatPercent(result.Summary.PercentUnassigned)},
	}

	if len(result.UnassignedMediums) > 0 {
		values = append(values, []interface{}{"Session Medium Breakdown (Unassigned):"})
		for _, medium := range result.UnassignedMediums {
			values = append(values, []interface{}{fmt.Sprintf("- %s", medium.Medium), medium.Sessions})
		}
	}

	values = append(values,
		[]interface{}{},
		[]interface{}{"3. TRANSACTIONS AND REVENUE ANALYSIS"},
		[]interface{}{"Total Transactions", result.Summary.TotalTransactions},
		[]interface{}{"Total Revenue", "$" + utils.FormatMoney(result.Summary.TotalRevenue)},
	)

	if len(result.Duplicates) > 0 {
		values = append(values, []interface{}{"Duplicate Transaction IDs:"})
		for _, duplicate := range result.Duplicates {
			values = append(values, []interface{}{fmt.Sprintf("- %s", duplicate.TransactionID), duplicate.Count})
		}
	}

	values = append(values,
		[]interface{}{},
		[]interface{}{"4. CONVERSION FUNNEL ANALYSIS"},
		[]interface{}{"View Item Events", result.Funnel.ViewItem},
		[]interface{}{"Add to Cart Events", result.Funnel.AddToCart},
		[]interface{}{"Begin Checkout Events", result.Funnel.BeginCheckout},
		[]interface{}{"Purchase Events", result.Funnel.Purchase},
	)

	if result.Funnel.ViewItem > 0 {
		values = append(values,
			[]interface{}{},
			[]interface{}{"FUNNEL CONVERSION RATES:"},
			[]interface{}{"View → Cart", utils.FormatPercent(result.Funnel.ViewToCart)},
			[]interface{}{"Cart → Checkout", utils.FormatPercent(result.Funnel.CartToCheckout)},
			[]interface{}{"Checkout → Purchase", utils.FormatPercent(result.Funnel.CheckoutToPurchase)},
			[]interface{}{"View → Purchase", utils.FormatPercent(result.Funnel.ViewToPurchase)},
		)
	}

	return values
}
