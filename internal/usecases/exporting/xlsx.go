package exporting

import (
	"fmt"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "GA4 Audit"

// ExportXLSX monta a planilha com as mesmas linhas planas do CSV, cabeçalho
// em negrito e larguras de coluna fixas, e devolve o arquivo em memória
func (s *Service) ExportXLSX(result *domain.AuditResult) (string, []byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return "", nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
	})
	if err != nil {
		return "", nil, err
	}

	headers := []string{"Metric", "Value"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(xlsxSheetName, cell, header); err != nil {
			return "", nil, err
		}
		if err := f.SetCellStyle(xlsxSheetName, cell, cell, headerStyle); err != nil {
			return "", nil, err
		}
	}

	for i, row := range FlattenRows(result) {
		metricCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(xlsxSheetName, metricCell, row.Metric); err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(xlsxSheetName, valueCell, row.Value); err != nil {
			return "", nil, err
		}
	}

	if err := f.SetColWidth(xlsxSheetName, "A", "A", 40); err != nil {
		return "", nil, err
	}
	if err := f.SetColWidth(xlsxSheetName, "B", "B", 20); err != nil {
		return "", nil, err
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("ga4_audit_v2_%s.xlsx", time.Now().Format(csvTimestampLayout))

	return filename, buf.Bytes(), nil
}
