package exporting

import (
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/sirupsen/logrus"
)

// SheetsWriter escreve o resultado da auditoria numa planilha de destino
type SheetsWriter interface {
	ExportAuditResult(session *domain.Session, locator string, result *domain.AuditResult) (string, error)
}

// Exporter serializa um resultado de auditoria nos formatos suportados
type Exporter interface {
	ExportCSV(result *domain.AuditResult) (string, []byte, error)
	ExportXLSX(result *domain.AuditResult) (string, []byte, error)
	ExportSheets(session *domain.Session, locator string, result *domain.AuditResult) (string, error)
}

type Service struct {
	sheets SheetsWriter
}

func NewService(sheets SheetsWriter) Exporter {
	return &Service{
		sheets: sheets,
	}
}

// ExportSheets delega ao integrador do Google Sheets, que valida o locator
// antes de qualquer chamada de rede
func (s *Service) ExportSheets(session *domain.Session, locator string, result *domain.AuditResult) (string, error) {
	sheetName, err := s.sheets.ExportAuditResult(session, locator, result)
	if err != nil {
		logrus.WithError(err).WithField("property_id", result.PropertyID).
			Error("export: falha ao exportar resultado para o Google Sheets")
		return "", err
	}

	return sheetName, nil
}
