package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/pkg/apiErrors"
	"github.com/mannersmaketh/ga-audit-v2/pkg/log"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sessionKindFromRequest valida o segmento :kind da rota de autorização
func sessionKindFromRequest(r *http.Request) (domain.SessionKind, bool) {
	kind := httprouter.ParamsFromContext(r.Context()).ByName("kind")

	switch domain.SessionKind(kind) {
	case domain.SessionKindAnalytics:
		return domain.SessionKindAnalytics, true
	case domain.SessionKindSheets:
		return domain.SessionKindSheets, true
	}

	return "", false
}

// Connect inicia o fluxo de autorização redirecionando o navegador para a
// página de consentimento do provedor
func Connect(service authorizing.Authorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind, ok := sessionKindFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de autorização inválido. Valores aceitos: analytics, sheets", nil)
			return
		}

		authURL, err := service.BuildAuthURL(kind)
		if err != nil {
			logger.WithError(err).WithField("kind", kind).Error("auth: falha ao montar URL de autorização")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível iniciar a autorização", nil)
			return
		}

		logger.WithField("kind", kind).Info("auth: redirecionando para consentimento do provedor")
		http.Redirect(w, r, authURL, http.StatusFound)
	})
}

// Callback finaliza o fluxo de autorização: valida o state, troca o código
// por tokens e devolve o handle de sessão para o cliente
func Callback(service authorizing.Authorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind, ok := sessionKindFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de autorização inválido. Valores aceitos: analytics, sheets", nil)
			return
		}

		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")
		if code == "" || state == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros code e state são obrigatórios", nil)
			return
		}

		handle, err := service.HandleCallback(kind, code, state)
		if err != nil {
			logger.WithError(err).WithField("kind", kind).Error("auth: falha no callback de autorização")

			switch {
			case errors.Is(err, authorizing.ErrInvalidStateNonce):
				apiErrors.WriteError(w, apiErrors.ErrInvalidStateNonce, "State de autorização inválido ou expirado", nil)
			case errors.Is(err, authorizing.ErrTokenExchange):
				apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Falha na troca do código de autorização", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível concluir a autorização", nil)
			}
			return
		}

		logger.WithField("kind", kind).Info("auth: autorização concluída com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"token": handle,
			"kind":  kind,
		}); err != nil {
			logger.WithError(err).Error("auth: falha ao codificar resposta do callback")
		}
	})
}
