package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionKind identifica a qual colaborador externo a credencial dá acesso
type SessionKind string

const (
	// SessionKindAnalytics autoriza consultas à API de dados do GA4
	SessionKindAnalytics SessionKind = "analytics"
	// SessionKindSheets autoriza escrita na planilha de destino
	SessionKindSheets SessionKind = "sheets"
)

// Session é o objeto explícito de credencial por usuário. Criado no primeiro
// callback de autorização bem-sucedido e destruído quando o refresh falha.
// Não existe singleton de processo: toda operação recebe a sessão por handle.
type Session struct {
	ID           string
	Kind         SessionKind
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired informa se o token de acesso já passou da validade
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Refreshable informa se a sessão possui refresh token para uma única
// tentativa de renovação
func (s *Session) Refreshable() bool {
	return s.RefreshToken != ""
}

// Claims são as claims do JWT entregue ao navegador como handle da sessão.
// O token carrega apenas o ID e o tipo; a credencial em si nunca sai do
// processo.
type Claims struct {
	SessionID string      `json:"session_id"`
	Kind      SessionKind `json:"kind"`
	jwt.RegisteredClaims
}
