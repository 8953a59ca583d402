package handler

import (
	"net/http"

	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/auditing"
	"github.com/mannersmaketh/ga-audit-v2/pkg/apiErrors"
	"github.com/mannersmaketh/ga-audit-v2/pkg/log"
	"github.com/mannersmaketh/ga-audit-v2/pkg/middleware"
)

// analyticsSessionFromContext recupera a sessão da requisição e garante que
// ela autoriza o colaborador de analytics
func analyticsSessionFromContext(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Sessão de credenciais ausente", nil)
		return nil, false
	}

	if session.Kind != domain.SessionKindAnalytics {
		apiErrors.WriteError(w, apiErrors.ErrInvalidSession, "A operação exige uma sessão de analytics", nil)
		return nil, false
	}

	return session, true
}

// ListProperties lista as propriedades de analytics visíveis para a sessão
func ListProperties(service auditing.Auditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := analyticsSessionFromContext(w, r)
		if !ok {
			return
		}

		properties, err := service.ListProperties(session)
		if err != nil {
			logger.WithError(err).Error("properties: falha ao listar propriedades")
			writeFetchError(w, err)
			return
		}

		logger.WithField("count", len(properties)).Info("properties: propriedades listadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"properties": properties,
		}); err != nil {
			logger.WithError(err).Error("properties: falha ao codificar resposta")
		}
	})
}
