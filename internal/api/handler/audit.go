package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/ga4client"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/auditing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/insighting"
	"github.com/mannersmaketh/ga-audit-v2/pkg/apiErrors"
	"github.com/mannersmaketh/ga-audit-v2/pkg/log"
	"github.com/pkg/errors"
)

// writeFetchError traduz as falhas das consultas de analytics para o
// catálogo de erros da API
func writeFetchError(w http.ResponseWriter, err error) {
	var apiErr *ga4client.APIError

	switch {
	case errors.Is(err, authorizing.ErrReauthorizationRequired):
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Credenciais expiradas, reautorize o acesso", nil)
	case errors.Is(err, auditing.ErrMissingBaseline):
		apiErrors.WriteError(w, apiErrors.ErrMissingBaseline, "A propriedade não devolveu a linha base de sessões e usuários", nil)
	case errors.Is(err, ga4client.ErrInvalidResponse):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAPIPayload, "Resposta inválida da API de analytics", nil)
	case errors.As(err, &apiErr):
		apiErrors.WriteError(w, apiErrors.ErrAnalyticsAPI, apiErr.Message, map[string]any{
			"status_code": apiErr.StatusCode,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar a propriedade", nil)
	}
}

// RunAudit executa a auditoria completa de uma propriedade e devolve o
// resultado agregado junto com os insights das regras de limiar
func RunAudit(auditor auditing.Auditor, evaluator insighting.Evaluator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := analyticsSessionFromContext(w, r)
		if !ok {
			return
		}

		propertyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if propertyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da propriedade não informado", nil)
			return
		}

		logger.WithField("property_id", propertyID).Info("audit: requisição de auditoria recebida")

		result, err := auditor.RunAudit(session, propertyID)
		if err != nil {
			logger.WithError(err).WithField("property_id", propertyID).Error("audit: auditoria falhou")
			writeFetchError(w, err)
			return
		}

		insights := evaluator.Evaluate(result)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"result":   result,
			"insights": insights,
		}); err != nil {
			logger.WithError(err).Error("audit: falha ao codificar resposta")
		}
	})
}
