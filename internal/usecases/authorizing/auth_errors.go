package authorizing

import "errors"

var (
	// ErrSessionNotFound indica que o handle apresentado não corresponde a
	// nenhuma sessão viva
	ErrSessionNotFound = errors.New("sessão não encontrada")

	// ErrReauthorizationRequired indica que a credencial expirou e a única
	// tentativa de refresh falhou; a sessão foi descartada
	ErrReauthorizationRequired = errors.New("credencial expirada, é necessário reautorizar a conta")

	// ErrInvalidStateNonce indica que o state devolvido pelo provedor não
	// confere com nenhum fluxo de autorização iniciado
	ErrInvalidStateNonce = errors.New("state de autorização inválido ou expirado")

	// ErrTokenExchange indica falha na troca do código de autorização por
	// tokens no provedor
	ErrTokenExchange = errors.New("falha ao trocar o código de autorização por tokens")
)
