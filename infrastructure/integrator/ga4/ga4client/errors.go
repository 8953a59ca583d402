package ga4client

import "errors"

// ErrInvalidResponse indica que o corpo devolvido pela API não pôde ser
// interpretado como dados estruturados
var ErrInvalidResponse = errors.New("resposta inválida da API de analytics")

// APIError carrega o envelope de erro devolvido pela API; a mensagem é
// repassada ao chamador sem alteração. Falhas 401 caem nesta mesma classe.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
