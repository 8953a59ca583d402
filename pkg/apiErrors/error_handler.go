package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autorização (AUTH)
	ErrSessionRequired   = "AUTH_001" // Sessão ausente na requisição
	ErrInvalidSession    = "AUTH_002" // Handle de sessão inválido
	ErrSessionExpired    = "AUTH_003" // Sessão expirada e refresh falhou
	ErrOAuthExchange     = "AUTH_004" // Falha na troca do código de autorização
	ErrInvalidStateNonce = "AUTH_005" // State do fluxo OAuth não confere

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrMalformedLocator    = "VAL_003" // URL de planilha sem ID reconhecível

	// Erros do colaborador de analytics (GA4)
	ErrAnalyticsAPI      = "GA4_001" // A API de analytics devolveu um erro
	ErrInvalidAPIPayload = "GA4_002" // Resposta da API não pôde ser interpretada
	ErrMissingBaseline   = "GA4_003" // Sem linha agregada de sessões/usuários

	// Erros de exportação (EXP)
	ErrSpreadsheetNotFound = "EXP_001" // Planilha de destino não encontrada
	ErrWriteRejected       = "EXP_002" // Destino recusou a escrita
	ErrExportFailed        = "EXP_003" // Falha ao serializar o relatório

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSessionRequired:     http.StatusUnauthorized,
	ErrInvalidSession:      http.StatusUnauthorized,
	ErrSessionExpired:      http.StatusUnauthorized,
	ErrOAuthExchange:       http.StatusBadGateway,
	ErrInvalidStateNonce:   http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrMalformedLocator:    http.StatusBadRequest,
	ErrAnalyticsAPI:        http.StatusBadGateway,
	ErrInvalidAPIPayload:   http.StatusBadGateway,
	ErrMissingBaseline:     http.StatusBadGateway,
	ErrSpreadsheetNotFound: http.StatusNotFound,
	ErrWriteRejected:       http.StatusBadGateway,
	ErrExportFailed:        http.StatusInternalServerError,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
