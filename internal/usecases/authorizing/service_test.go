package authorizing

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(tokenURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Google.ClientID = "client-id"
	cfg.Google.ClientSecret = "client-secret"
	cfg.Google.RedirectURI = "http://localhost:8000/v1/auth/analytics/callback"
	cfg.Google.AuthorizeURL = "https://accounts.google.com/o/oauth2/v2/auth"
	cfg.Google.TokenURL = tokenURL
	cfg.Google.AnalyticsScopes = "https://www.googleapis.com/auth/analytics.readonly"
	cfg.Google.SheetsScopes = "https://www.googleapis.com/auth/spreadsheets"
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.SessionTTLMin = 60
	return cfg
}

func TestBuildAuthURL(t *testing.T) {
	service := NewService(testConfig("http://token"))

	authURL, err := service.BuildAuthURL(domain.SessionKindAnalytics)
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "https://www.googleapis.com/auth/analytics.readonly", query.Get("scope"))
	// Refresh token só vem com acesso offline e consentimento explícito
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestBuildAuthURL_SheetsScopes(t *testing.T) {
	service := NewService(testConfig("http://token"))

	authURL, err := service.BuildAuthURL(domain.SessionKindSheets)
	require.NoError(t, err)

	parsed, _ := url.Parse(authURL)
	assert.Equal(t, "https://www.googleapis.com/auth/spreadsheets", parsed.Query().Get("scope"))
}

func tokenEndpoint(t *testing.T, handler func(form url.Values, w http.ResponseWriter)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		handler(r.PostForm, w)
	}))
}

func TestHandleCallback_CreatesSessionAndHandle(t *testing.T) {
	server := tokenEndpoint(t, func(form url.Values, w http.ResponseWriter) {
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "auth-code", form.Get("code"))
		w.Write([]byte(`{"access_token": "at-1", "refresh_token": "rt-1", "expires_in": 3600}`))
	})
	defer server.Close()

	service := NewService(testConfig(server.URL))

	authURL, err := service.BuildAuthURL(domain.SessionKindAnalytics)
	require.NoError(t, err)
	parsed, _ := url.Parse(authURL)
	state := parsed.Query().Get("state")

	handle, err := service.HandleCallback(domain.SessionKindAnalytics, "auth-code", state)
	require.NoError(t, err)
	require.NotEmpty(t, handle)

	// O handle resolve de volta para a sessão criada
	session, err := service.SessionFromToken(handle)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionKindAnalytics, session.Kind)
	assert.Equal(t, "at-1", session.AccessToken)
	assert.Equal(t, "rt-1", session.RefreshToken)
}

func TestHandleCallback_InvalidState(t *testing.T) {
	service := NewService(testConfig("http://token"))

	handle, err := service.HandleCallback(domain.SessionKindAnalytics, "code", "state-desconhecido")
	assert.Empty(t, handle)
	assert.ErrorIs(t, err, ErrInvalidStateNonce)
}

func TestHandleCallback_StateKindMismatch(t *testing.T) {
	service := NewService(testConfig("http://token"))

	authURL, err := service.BuildAuthURL(domain.SessionKindSheets)
	require.NoError(t, err)
	parsed, _ := url.Parse(authURL)
	state := parsed.Query().Get("state")

	// State registrado para sheets não serve no callback de analytics
	handle, err := service.HandleCallback(domain.SessionKindAnalytics, "code", state)
	assert.Empty(t, handle)
	assert.ErrorIs(t, err, ErrInvalidStateNonce)
}

func TestHandleCallback_TokenExchangeFails(t *testing.T) {
	server := tokenEndpoint(t, func(form url.Values, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Bad Request"}`))
	})
	defer server.Close()

	service := NewService(testConfig(server.URL))

	authURL, _ := service.BuildAuthURL(domain.SessionKindAnalytics)
	parsed, _ := url.Parse(authURL)
	state := parsed.Query().Get("state")

	handle, err := service.HandleCallback(domain.SessionKindAnalytics, "bad-code", state)
	assert.Empty(t, handle)
	assert.ErrorIs(t, err, ErrTokenExchange)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestSessionFromToken_Garbage(t *testing.T) {
	service := NewService(testConfig("http://token"))

	session, err := service.SessionFromToken("not-a-jwt")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAccessToken_ValidSessionNoRefresh(t *testing.T) {
	// O endpoint de token não deve ser chamado para sessão válida
	server := tokenEndpoint(t, func(form url.Values, w http.ResponseWriter) {
		t.Error("refresh inesperado para sessão válida")
	})
	defer server.Close()

	service := NewService(testConfig(server.URL))
	session := &domain.Session{
		ID:          "sess-1",
		AccessToken: "at-valid",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	service.sessions[session.ID] = session

	token, err := service.AccessToken(session)
	require.NoError(t, err)
	assert.Equal(t, "at-valid", token)
}

func TestAccessToken_RefreshOnce(t *testing.T) {
	refreshCalls := 0
	server := tokenEndpoint(t, func(form url.Values, w http.ResponseWriter) {
		refreshCalls++
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "rt-1", form.Get("refresh_token"))
		w.Write([]byte(`{"access_token": "at-new", "expires_in": 3600}`))
	})
	defer server.Close()

	service := NewService(testConfig(server.URL))
	session := &domain.Session{
		ID:           "sess-1",
		AccessToken:  "at-old",
		RefreshToken: "rt-1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	service.sessions[session.ID] = session

	token, err := service.AccessToken(session)
	require.NoError(t, err)
	assert.Equal(t, "at-new", token)
	assert.Equal(t, 1, refreshCalls)

	// O refresh token original é mantido quando a resposta não traz um novo
	assert.Equal(t, "rt-1", session.RefreshToken)
	assert.False(t, session.Expired())
}

func TestAccessToken_RefreshFailureDestroysSession(t *testing.T) {
	server := tokenEndpoint(t, func(form url.Values, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant"}`))
	})
	defer server.Close()

	service := NewService(testConfig(server.URL))
	session := &domain.Session{
		ID:           "sess-1",
		AccessToken:  "at-old",
		RefreshToken: "rt-dead",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}
	service.sessions[session.ID] = session

	token, err := service.AccessToken(session)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrReauthorizationRequired)

	// Política de fallback único: a sessão foi descartada do processo
	_, exists := service.sessions[session.ID]
	assert.False(t, exists)
}

func TestAccessToken_ExpiredWithoutRefreshToken(t *testing.T) {
	service := NewService(testConfig("http://token"))
	session := &domain.Session{
		ID:        "sess-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	service.sessions[session.ID] = session

	token, err := service.AccessToken(session)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrReauthorizationRequired)

	_, exists := service.sessions[session.ID]
	assert.False(t, exists)
}

func TestDestroySession(t *testing.T) {
	service := NewService(testConfig("http://token"))
	service.sessions["sess-1"] = &domain.Session{ID: "sess-1"}

	service.DestroySession("sess-1")

	_, exists := service.sessions["sess-1"]
	assert.False(t, exists)
}

func TestCleanupExpired(t *testing.T) {
	service := NewService(testConfig("http://token"))

	// Viva, expirada mas renovável, e morta de vez
	service.sessions["alive"] = &domain.Session{
		ID:        "alive",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	service.sessions["refreshable"] = &domain.Session{
		ID:           "refreshable",
		RefreshToken: "rt",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	service.sessions["dead"] = &domain.Session{
		ID:        "dead",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	service.states["stale"] = pendingState{kind: domain.SessionKindAnalytics, createdAt: time.Now().Add(-time.Hour)}
	service.states["fresh"] = pendingState{kind: domain.SessionKindAnalytics, createdAt: time.Now()}

	removed := service.CleanupExpired()

	assert.Equal(t, 1, removed)
	assert.Contains(t, service.sessions, "alive")
	assert.Contains(t, service.sessions, "refreshable")
	assert.NotContains(t, service.sessions, "dead")
	assert.NotContains(t, service.states, "stale")
	assert.Contains(t, service.states, "fresh")
}

func TestSignHandle_RoundTrip(t *testing.T) {
	service := NewService(testConfig("http://token"))

	session := &domain.Session{ID: "sess-jwt", Kind: domain.SessionKindSheets}
	service.sessions[session.ID] = session

	handle, err := service.signHandle(session)
	require.NoError(t, err)
	assert.True(t, strings.Count(handle, ".") == 2)

	resolved, err := service.SessionFromToken(handle)
	require.NoError(t, err)
	assert.Equal(t, session, resolved)
}
