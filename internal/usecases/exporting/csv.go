package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
)

// csvTimestampLayout entra no nome do arquivo sugerido no download
const csvTimestampLayout = "20060102_150405"

// ExportCSV serializa o resultado achatado em CSV com cabeçalho fixo e
// devolve o nome de arquivo sugerido junto com o conteúdo
func (s *Service) ExportCSV(result *domain.AuditResult) (string, []byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return "", nil, err
	}

	for _, row := range FlattenRows(result) {
		if err := writer.Write([]string{row.Metric, row.Value}); err != nil {
			return "", nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("ga4_audit_v2_%s.csv", time.Now().Format(csvTimestampLayout))

	return filename, buf.Bytes(), nil
}
