package exporting

import (
	"fmt"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/pkg/utils"
)

// Row é um par métrica/valor já formatado para os formatos tabulares (CSV e
// XLSX). O Google Sheets usa o layout em seções, não este achatamento.
type Row struct {
	Metric string
	Value  string
}

// FlattenRows converte o resultado em linhas planas na ordem fixa do
// relatório: métricas base, funil, meios Unassigned e por fim duplicatas.
// Seções vazias somem sem deixar linha de cabeçalho órfã.
func FlattenRows(result *domain.AuditResult) []Row {
	rows := make([]Row, 0, 11+len(result.UnassignedMediums)+len(result.Duplicates))

	rows = append(rows,
		Row{"Total Sessions (L90)", utils.FormatInt(result.Summary.TotalSessions)},
		Row{"Total Users (L90)", utils.FormatInt(result.Summary.TotalUsers)},
		Row{"Sessions per User", utils.FormatFloat(result.Summary.SessionsPerUser)},
		Row{"Unassigned Sessions (L90)", utils.FormatInt(result.Summary.UnassignedSessions)},
		Row{"Percent Unassigned Sessions", utils.FormatPercent(result.Summary.PercentUnassigned)},
		Row{"Total Transactions (L90)", utils.FormatInt(result.Summary.TotalTransactions)},
		Row{"Total Revenue (L90)", utils.FormatMoney(result.Summary.TotalRevenue)},
	)

	rows = append(rows,
		Row{"View Item Events", utils.FormatInt(result.Funnel.ViewItem)},
		Row{"Add to Cart Events", utils.FormatInt(result.Funnel.AddToCart)},
		Row{"Begin Checkout Events", utils.FormatInt(result.Funnel.BeginCheckout)},
		Row{"Purchase Events", utils.FormatInt(result.Funnel.Purchase)},
	)

	for _, medium := range result.UnassignedMediums {
		rows = append(rows, Row{
			Metric: fmt.Sprintf("Unassigned - %s", medium.Medium),
			Value:  utils.FormatInt(medium.Sessions),
		})
	}

	for _, dup := range result.Duplicates {
		rows = append(rows, Row{
			Metric: fmt.Sprintf("Duplicate Transaction - %s", dup.TransactionID),
			Value:  utils.FormatInt(dup.Count),
		})
	}

	return rows
}
