package handler

import (
	"fmt"
	"net/http"

	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets/sheetsclient"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/exporting"
	"github.com/mannersmaketh/ga-audit-v2/pkg/apiErrors"
	"github.com/mannersmaketh/ga-audit-v2/pkg/log"
	"github.com/mannersmaketh/ga-audit-v2/pkg/middleware"
	"github.com/pkg/errors"
)

// exportRequest é o corpo das rotas de exportação. Como não há camada de
// persistência, o cliente devolve o resultado recebido na auditoria.
type exportRequest struct {
	Result *domain.AuditResult `json:"result"`

	// SpreadsheetURL só é usada na exportação para o Google Sheets
	SpreadsheetURL string `json:"spreadsheet_url,omitempty"`
}

func decodeExportRequest(w http.ResponseWriter, r *http.Request) (*exportRequest, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return nil, false
	}

	if req.Result == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Resultado da auditoria ausente no corpo da requisição", nil)
		return nil, false
	}

	return &req, true
}

// ExportCSV serializa o resultado em CSV e devolve o arquivo para download
func ExportCSV(exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := decodeExportRequest(w, r)
		if !ok {
			return
		}

		filename, data, err := exporter.ExportCSV(req.Result)
		if err != nil {
			logger.WithError(err).Error("export: falha ao gerar CSV")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Não foi possível gerar o CSV", nil)
			return
		}

		logger.WithField("filename", filename).Info("export: CSV gerado com sucesso")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("export: falha ao escrever CSV na resposta")
		}
	})
}

// ExportXLSX serializa o resultado em XLSX e devolve o arquivo para download
func ExportXLSX(exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := decodeExportRequest(w, r)
		if !ok {
			return
		}

		filename, data, err := exporter.ExportXLSX(req.Result)
		if err != nil {
			logger.WithError(err).Error("export: falha ao gerar XLSX")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Não foi possível gerar o XLSX", nil)
			return
		}

		logger.WithField("filename", filename).Info("export: XLSX gerado com sucesso")

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("export: falha ao escrever XLSX na resposta")
		}
	})
}

// ExportSheets escreve o resultado na planilha de destino do usuário. Exige
// uma sessão do tipo sheets.
func ExportSheets(exporter exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Sessão de credenciais ausente", nil)
			return
		}
		if session.Kind != domain.SessionKindSheets {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "A exportação para planilha exige uma sessão do tipo sheets", nil)
			return
		}

		req, ok := decodeExportRequest(w, r)
		if !ok {
			return
		}

		if req.SpreadsheetURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL da planilha de destino não informada", nil)
			return
		}

		sheetName, err := exporter.ExportSheets(session, req.SpreadsheetURL, req.Result)
		if err != nil {
			logger.WithError(err).Error("export: falha ao exportar para o Google Sheets")
			writeSheetsError(w, err)
			return
		}

		logger.WithField("sheet_name", sheetName).Info("export: resultado exportado para o Google Sheets")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"sheet_name": sheetName,
		}); err != nil {
			logger.WithError(err).Error("export: falha ao codificar resposta")
		}
	})
}

// writeSheetsError traduz as falhas da exportação para planilha para o
// catálogo de erros da API
func writeSheetsError(w http.ResponseWriter, err error) {
	var writeErr *sheetsclient.WriteRejectedError

	switch {
	case errors.Is(err, sheets.ErrMalformedLocator):
		apiErrors.WriteError(w, apiErrors.ErrMalformedLocator, "A URL informada não contém um ID de planilha válido", nil)
	case errors.Is(err, authorizing.ErrReauthorizationRequired):
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Credenciais expiradas, reautorize o acesso", nil)
	case errors.Is(err, sheetsclient.ErrSpreadsheetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSpreadsheetNotFound, "Planilha de destino não encontrada ou sem permissão de acesso", nil)
	case errors.As(err, &writeErr):
		apiErrors.WriteError(w, apiErrors.ErrWriteRejected, writeErr.Message, map[string]any{
			"status_code": writeErr.StatusCode,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Não foi possível exportar o resultado", nil)
	}
}
