package routers

import (
	"bytes"
	"context"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/delivery/http/controllers"
	"medilabx-service/internal/app/delivery/http/middlewares"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/packages"
	"medilabx-service/internal/app/services/shared/rbac"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type gateway struct {
	router   *chi.Mux
	sessions *MockSessionRepository
	auth     *MockSessionUsecase
	samples  *MockSampleUsecase
	reports  *MockReportUsecase
	logs     *observer.ObservedLogs
}

func newGateway(t *testing.T, allowedOrigins ...string) *gateway {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:            "api",
			Version:                   "v1",
			AllowedOrigins:            allowedOrigins,
			MaxRequests:               1000,
			MaxTimeRequestsPerSeconds: 1,
			RequestTimeoutInSeconds:   5,
		},
	}

	authorizer, err := rbac.NewEnforcer(BasePath(internalConfig))
	require.NoError(t, err)

	g := &gateway{
		router:   chi.NewRouter(),
		sessions: new(MockSessionRepository),
		auth:     new(MockSessionUsecase),
		samples:  new(MockSampleUsecase),
		reports:  new(MockReportUsecase),
		logs:     logs,
	}
	middlewareInstance := middlewares.NewMiddlewares(logger, g.sessions, authorizer, internalConfig)
	SetupRoutes(
		g.router,
		internalConfig,
		middlewareInstance,
		controllers.NewAuthController(logger, g.auth, internalConfig),
		controllers.NewSampleController(logger, g.samples, internalConfig),
		controllers.NewReportController(logger, g.reports, internalConfig),
		controllers.NewPackageController(logger, packages.NewPackageUsecase(logger)),
	)
	return g
}

// signIn stores a session for role and returns its bearer id.
func (g *gateway) signIn(role string) string {
	sessionID := "session-" + role
	g.sessions.On("Find", mock.Anything, sessionID).
		Return(&models.Session{ID: sessionID, Token: "backend-" + role, User: models.User{ID: 1, Role: role}}, nil)
	return sessionID
}

func (g *gateway) do(method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+sessionID)
	}
	rr := httptest.NewRecorder()
	g.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_RequiresSession(t *testing.T) {
	g := newGateway(t)

	rr := g.do(http.MethodGet, "/api/v1/samples", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	g.samples.AssertNotCalled(t, "GetBoard", mock.Anything, mock.Anything)
}

func TestRouter_UnknownSession(t *testing.T) {
	g := newGateway(t)
	g.sessions.On("Find", mock.Anything, "stale").Return(nil, exceptions.ErrSessionNotFound(nil))

	rr := g.do(http.MethodGet, "/api/v1/samples", "stale", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, constvars.ErrClientNotLoggedIn, gjson.Get(rr.Body.String(), "message").String())
}

func TestRouter_PatientCannotSeeSamples(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RolePatient)

	rr := g.do(http.MethodGet, "/api/v1/samples", sessionID, nil)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_GetSamples(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	g.samples.On("GetBoard", mock.MatchedBy(func(ctx context.Context) bool {
		token, _ := ctx.Value(constvars.CONTEXT_BACKEND_TOKEN_KEY).(string)
		return token == "backend-lab_technician"
	}), "processing").Return(&responses.BoardSnapshot{Tab: "processing", Rows: []responses.SampleRow{}}, nil).Once()

	rr := g.do(http.MethodGet, "/api/v1/samples?tab=processing", sessionID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "processing", gjson.Get(rr.Body.String(), "data.tab").String())
	g.samples.AssertExpectations(t)
}

func TestRouter_TransitionRejectionStillAnswersBoard(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	g.samples.On("TransitionSample", mock.Anything, "", int64(12), "collect", &requests.CancelBooking{}).
		Return(&responses.BoardSnapshot{Tab: "booked", Error: "Failed to mark sample as collected: Sample already collected"}, nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/samples/12/collect", sessionID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Failed to mark sample as collected: Sample already collected", gjson.Get(rr.Body.String(), "data.error").String())
}

func TestRouter_CancelCarriesNotes(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleAdmin)
	g.samples.On("TransitionSample", mock.Anything, "reviewed", int64(9), "cancel", &requests.CancelBooking{Notes: "patient left"}).
		Return(&responses.BoardSnapshot{Tab: "reviewed"}, nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/samples/9/cancel?tab=reviewed", sessionID, requests.CancelBooking{Notes: "patient left"})

	assert.Equal(t, http.StatusOK, rr.Code)
	g.samples.AssertExpectations(t)
}

func TestRouter_DoctorCannotTransition(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleDoctor)

	rr := g.do(http.MethodPost, "/api/v1/samples/12/collect", sessionID, nil)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	g.samples.AssertNotCalled(t, "TransitionSample", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_InvalidBookingID(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)

	rr := g.do(http.MethodGet, "/api/v1/samples/abc/report-form", sessionID, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_SaveReportNotEditable(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	request := &requests.SubmitReport{TestResults: []requests.TestResultInput{{ParameterID: 1, Value: "14.2"}}}
	g.reports.On("SaveReport", mock.Anything, int64(12), request).
		Return(nil, exceptions.ErrReportNotEditable(nil, 12, "reviewed")).Once()

	rr := g.do(http.MethodPut, "/api/v1/samples/12/report", sessionID, request)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, gjson.Get(rr.Body.String(), "success").Bool())
}

func TestRouter_DownloadReport(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RolePatient)
	g.reports.On("DownloadReport", mock.Anything, int64(40)).
		Return(&responses.ReportDocument{ReportID: 40, FileName: "report-40.pdf", ContentType: constvars.MIMEApplicationPDF, Content: []byte("%PDF-1.4")}, nil).Once()

	rr := g.do(http.MethodGet, "/api/v1/reports/40/download", sessionID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationPDF, rr.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, `attachment; filename="report-40.pdf"`, rr.Header().Get(constvars.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.4", rr.Body.String())
}

func TestRouter_Login(t *testing.T) {
	g := newGateway(t)
	request := &requests.Login{Email: "tech@lab.test", Password: "secret"}
	g.auth.On("Login", mock.Anything, request).
		Return(&responses.Session{SessionID: "new-session", User: models.User{Role: constvars.RoleLabTechnician}}, nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/auth/login", "", request)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "new-session", gjson.Get(rr.Body.String(), "data.session_id").String())
}

func TestRouter_Logout(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleDoctor)
	g.auth.On("Logout", mock.Anything, sessionID).Return(nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/auth/logout", sessionID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	g.auth.AssertExpectations(t)
}

func TestRouter_PackageSavings(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleAdmin)

	rr := g.do(http.MethodPost, "/api/v1/test-packages/savings", sessionID, requests.PackageSavings{
		RegularPrices: []string{"50", "30", "20"},
		PackagePrice:  "80",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "20", gjson.Get(rr.Body.String(), "data.savings_percentage").String())
}

func TestRouter_TrailingSlashSharesPolicy(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	g.samples.On("GetBoard", mock.Anything, "processing").
		Return(&responses.BoardSnapshot{Tab: "processing", Rows: []responses.SampleRow{}}, nil).Once()

	rr := g.do(http.MethodGet, "/api/v1/samples/?tab=processing", sessionID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "processing", gjson.Get(rr.Body.String(), "data.tab").String())

	patientID := g.signIn(constvars.RolePatient)
	rr = g.do(http.MethodGet, "/api/v1/samples/", patientID, nil)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	g.samples.AssertExpectations(t)
}

func TestRouter_IntegratedWorkflowFailedStep(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	request := &requests.CreateBooking{PatientID: 7, TestID: 3, DeliveryMethod: "email"}
	g.samples.On("RunIntegratedWorkflow", mock.Anything, request).
		Return(&responses.IntegratedWorkflow{
			Booking:        &models.TestBooking{ID: 42, Status: models.BookingStatusBooked},
			CompletedSteps: []string{"book"},
			FailedStep:     "collect",
			Error:          "Failed to complete workflow: Phlebotomist not assigned",
		}, nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/bookings/integrated", sessionID, request)

	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "collect", gjson.Get(body, "data.failed_step").String())
	assert.Equal(t, `["book"]`, gjson.Get(body, "data.completed_steps").Raw)
	assert.Equal(t, "Failed to complete workflow: Phlebotomist not assigned", gjson.Get(body, "message").String())
	assert.Equal(t, "Failed to complete workflow: Phlebotomist not assigned", gjson.Get(body, "data.error").String())
	g.samples.AssertExpectations(t)
}

func TestRouter_IntegratedWorkflowDeniedToDoctor(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleDoctor)

	rr := g.do(http.MethodPost, "/api/v1/bookings/integrated", sessionID, requests.CreateBooking{PatientID: 7, TestID: 3, DeliveryMethod: "email"})

	assert.Equal(t, http.StatusForbidden, rr.Code)
	g.samples.AssertNotCalled(t, "RunIntegratedWorkflow", mock.Anything, mock.Anything)
}

func preflight(g *gateway, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/samples", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	g.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_CORS(t *testing.T) {
	t.Run("no configured origin denies cross origin calls", func(t *testing.T) {
		g := newGateway(t)

		rr := preflight(g, "https://elsewhere.test")

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("listed origin gets credentials", func(t *testing.T) {
		g := newGateway(t, "https://lab.example.com")

		rr := preflight(g, "https://lab.example.com")

		assert.Equal(t, "https://lab.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		assert.Empty(t, preflight(g, "https://elsewhere.test").Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard origin never carries credentials", func(t *testing.T) {
		g := newGateway(t, "*")

		rr := preflight(g, "https://elsewhere.test")

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestRouter_AccessLogNamesCaller(t *testing.T) {
	g := newGateway(t)
	sessionID := g.signIn(constvars.RoleLabTechnician)
	g.samples.On("TransitionSample", mock.Anything, "", int64(12), "collect", &requests.CancelBooking{}).
		Return(&responses.BoardSnapshot{Tab: "booked"}, nil).Once()

	rr := g.do(http.MethodPost, "/api/v1/samples/12/collect", sessionID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	entries := g.logs.FilterMessage("API request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, constvars.RoleLabTechnician, fields[constvars.LoggingRoleKey])
	assert.Equal(t, int64(1), fields[constvars.LoggingUserIDKey])
	assert.Equal(t, "12", fields[constvars.LoggingBookingIDKey])
	assert.Equal(t, "collect", fields[constvars.LoggingActionKey])
	assert.Equal(t, "/api/v1/samples/{booking_id}/{action}", fields[constvars.LoggingRouteKey])
	assert.Equal(t, int64(http.StatusOK), fields[constvars.LoggingStatusCodeKey])
}

func TestRouter_AccessLogWithoutSession(t *testing.T) {
	g := newGateway(t)

	rr := g.do(http.MethodGet, "/api/v1/samples", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	entries := g.logs.FilterMessage("API request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotContains(t, fields, constvars.LoggingRoleKey)
	assert.Equal(t, false, fields[constvars.LoggingSuccessKey])
}
