package authorizing

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Authorizer gerencia o ciclo de vida das sessões de credenciais OAuth dos
// dois colaboradores externos (Analytics e Sheets)
type Authorizer interface {
	// BuildAuthURL monta a URL de autorização do provedor para o tipo de
	// conta informado, registrando o state anti-CSRF do fluxo
	BuildAuthURL(kind domain.SessionKind) (string, error)

	// HandleCallback troca o código de autorização por tokens, cria a sessão
	// e devolve o handle JWT que o navegador apresentará nas próximas chamadas
	HandleCallback(kind domain.SessionKind, code, state string) (string, error)

	// SessionFromToken resolve um handle JWT para a sessão viva correspondente
	SessionFromToken(tokenString string) (*domain.Session, error)

	// AccessToken devolve um token de acesso válido para a sessão, aplicando
	// a política de refresh único: expirou, renova uma vez; falhou, descarta
	AccessToken(session *domain.Session) (string, error)

	// DestroySession remove uma sessão do processo
	DestroySession(sessionID string)

	// CleanupExpired remove sessões mortas e states de fluxo abandonados,
	// devolvendo quantas sessões foram descartadas
	CleanupExpired() int
}

type pendingState struct {
	kind      domain.SessionKind
	createdAt time.Time
}

type Service struct {
	cfg        *config.Config
	httpClient *http.Client

	mu       sync.Mutex
	sessions map[string]*domain.Session
	states   map[string]pendingState
}

// NewService cria o serviço de autorização com o armazenamento de sessões em
// memória. Sem singleton de processo: quem precisar de credencial recebe a
// sessão por handle.
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sessions:   make(map[string]*domain.Session),
		states:     make(map[string]pendingState),
	}
}

// tokenResponse é a resposta do endpoint de token do provedor
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (s *Service) scopesFor(kind domain.SessionKind) string {
	if kind == domain.SessionKindSheets {
		return s.cfg.Google.SheetsScopes
	}
	return s.cfg.Google.AnalyticsScopes
}

func (s *Service) BuildAuthURL(kind domain.SessionKind) (string, error) {
	state, err := utils.GenerateStateNonce()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar state de autorização: %w", err)
	}

	s.mu.Lock()
	s.states[state] = pendingState{kind: kind, createdAt: time.Now()}
	s.mu.Unlock()

	params := url.Values{}
	params.Set("client_id", s.cfg.Google.ClientID)
	params.Set("redirect_uri", s.cfg.Google.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", s.scopesFor(kind))
	params.Set("state", state)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return s.cfg.Google.AuthorizeURL + "?" + params.Encode(), nil
}

func (s *Service) HandleCallback(kind domain.SessionKind, code, state string) (string, error) {
	s.mu.Lock()
	pending, ok := s.states[state]
	if ok {
		delete(s.states, state)
	}
	s.mu.Unlock()

	if !ok || pending.kind != kind {
		return "", ErrInvalidStateNonce
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", s.cfg.Google.ClientID)
	form.Set("client_secret", s.cfg.Google.ClientSecret)
	form.Set("redirect_uri", s.cfg.Google.RedirectURI)

	tokens, err := s.requestTokens(form)
	if err != nil {
		logrus.WithError(err).WithField("kind", kind).Error("Erro na troca do código de autorização")
		return "", err
	}

	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID de sessão: %w", err)
	}

	session := &domain.Session{
		ID:           sessionID,
		Kind:         kind,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second),
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"kind":       kind,
	}).Info("Sessão de credenciais criada com sucesso")

	return s.signHandle(session)
}

// signHandle emite o JWT que serve como handle opaco da sessão
func (s *Service) signHandle(session *domain.Session) (string, error) {
	ttl := time.Duration(s.cfg.Auth.SessionTTLMin) * time.Minute

	claims := &domain.Claims{
		SessionID: session.ID,
		Kind:      session.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", fmt.Errorf("erro ao assinar handle de sessão: %w", err)
	}

	return signed, nil
}

func (s *Service) SessionFromToken(tokenString string) (*domain.Session, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	session, ok := s.sessions[claims.SessionID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *Service) AccessToken(session *domain.Session) (string, error) {
	// A checagem e o refresh acontecem sob o mesmo lock para que duas
	// chamadas concorrentes não disparem dois refreshes
	s.mu.Lock()
	defer s.mu.Unlock()

	if !session.Expired() {
		return session.AccessToken, nil
	}

	if !session.Refreshable() {
		delete(s.sessions, session.ID)
		return "", ErrReauthorizationRequired
	}

	logrus.WithField("session_id", session.ID).Info("Token de acesso expirado, tentando refresh único")

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", session.RefreshToken)
	form.Set("client_id", s.cfg.Google.ClientID)
	form.Set("client_secret", s.cfg.Google.ClientSecret)

	tokens, err := s.requestTokens(form)
	if err != nil {
		// Política de fallback único: refresh falhou, a credencial é
		// descartada e o usuário precisa reautorizar
		delete(s.sessions, session.ID)
		logrus.WithError(err).WithField("session_id", session.ID).Warn("Refresh falhou, sessão descartada")
		return "", ErrReauthorizationRequired
	}

	session.AccessToken = tokens.AccessToken
	session.ExpiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	if tokens.RefreshToken != "" {
		session.RefreshToken = tokens.RefreshToken
	}

	return session.AccessToken, nil
}

func (s *Service) requestTokens(form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequest(http.MethodPost, s.cfg.Google.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenExchange, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var tokenErr tokenErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&tokenErr); decodeErr == nil && tokenErr.Error != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrTokenExchange, tokenErr.Error, tokenErr.ErrorDescription)
		}
		return nil, fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("%w: resposta inválida do endpoint de token", ErrTokenExchange)
	}

	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: resposta sem access_token", ErrTokenExchange)
	}

	return &tokens, nil
}

func (s *Service) DestroySession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// stateTTL é o tempo máximo entre iniciar o fluxo e voltar do provedor
const stateTTL = 10 * time.Minute

func (s *Service) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		// Sessão expirada e sem refresh token nunca mais será utilizável
		if session.Expired() && !session.Refreshable() {
			delete(s.sessions, id)
			removed++
		}
	}

	for state, pending := range s.states {
		if time.Since(pending.createdAt) > stateTTL {
			delete(s.states, state)
		}
	}

	return removed
}
