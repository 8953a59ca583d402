package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/ga4client"
	"github.com/mannersmaketh/ga-audit-v2/internal/api/handler"
	"github.com/mannersmaketh/ga-audit-v2/internal/domain"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/auditing/mocks"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/insighting"
	"github.com/mannersmaketh/ga-audit-v2/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// auditRequest monta uma requisição com a sessão no contexto e o parâmetro
// de rota :id, do jeito que o middleware e o router entregam ao handler
func auditRequest(session *domain.Session, propertyID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/properties/"+propertyID+"/audit", nil)

	ctx := req.Context()
	if session != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeySession, session)
	}
	params := httprouter.Params{{Key: "id", Value: propertyID}}
	ctx = context.WithValue(ctx, httprouter.ParamsKey, params)

	return req.WithContext(ctx)
}

func analyticsSession() *domain.Session {
	return &domain.Session{
		ID:        "sess-1",
		Kind:      domain.SessionKindAnalytics,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRunAuditHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := analyticsSession()

	result := &domain.AuditResult{
		PropertyID:  "123456",
		GeneratedAt: time.Now(),
		Summary: domain.AuditSummary{
			TotalSessions:     10000,
			TotalUsers:        4000,
			SessionsPerUser:   2.5,
			PercentUnassigned: 5.0,
		},
		Funnel: domain.FunnelSummary{ViewItem: 100, Purchase: 10},
	}

	mockAuditor.EXPECT().RunAudit(session, "123456").Return(result, nil)

	h := handler.RunAudit(mockAuditor, insighting.NewEvaluator())

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, auditRequest(session, "123456"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Result   *domain.AuditResult `json:"result"`
		Insights []domain.Insight    `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, "123456", response.Result.PropertyID)
	assert.Equal(t, int64(10000), response.Result.Summary.TotalSessions)
	// Resumo saudável produz exatamente o insight de confirmação
	require.Len(t, response.Insights, 1)
	assert.Equal(t, domain.InsightAllHealthy, response.Insights[0].Code)
}

func TestRunAuditHandler_WrongSessionKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := &domain.Session{ID: "sess-2", Kind: domain.SessionKindSheets}

	h := handler.RunAudit(mockAuditor, insighting.NewEvaluator())

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, auditRequest(session, "123456"))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_002")
}

func TestRunAuditHandler_ReauthorizationRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := analyticsSession()

	mockAuditor.EXPECT().
		RunAudit(session, "123456").
		Return(nil, authorizing.ErrReauthorizationRequired)

	h := handler.RunAudit(mockAuditor, insighting.NewEvaluator())

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, auditRequest(session, "123456"))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_003")
}

func TestRunAuditHandler_APIErrorMessagePassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := analyticsSession()

	mockAuditor.EXPECT().
		RunAudit(session, "123456").
		Return(nil, &ga4client.APIError{StatusCode: 403, Message: "permission denied for property"})

	h := handler.RunAudit(mockAuditor, insighting.NewEvaluator())

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, auditRequest(session, "123456"))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	// A mensagem da API viaja sem alteração até o cliente
	assert.Contains(t, recorder.Body.String(), "permission denied for property")
}

func TestRunAuditHandler_UnknownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := analyticsSession()

	mockAuditor.EXPECT().
		RunAudit(session, "123456").
		Return(nil, errors.New("conexão recusada"))

	h := handler.RunAudit(mockAuditor, insighting.NewEvaluator())

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, auditRequest(session, "123456"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_001")
}

func TestListPropertiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditor := mocks.NewMockAuditor(ctrl)
	session := analyticsSession()

	mockAuditor.EXPECT().ListProperties(session).Return([]domain.PropertyOption{
		{AccountName: "Loja A", PropertyName: "Site", PropertyID: "111"},
	}, nil)

	h := handler.ListProperties(mockAuditor)

	req := httptest.NewRequest(http.MethodGet, "/v1/properties", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeySession, session))

	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Properties []domain.PropertyOption `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Properties, 1)
	assert.Equal(t, "111", response.Properties[0].PropertyID)
}
