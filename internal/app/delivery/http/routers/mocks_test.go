package routers

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Session)
	return result, args.Error(1)
}

func (m *MockSessionUsecase) CheckSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockSampleUsecase struct {
	mock.Mock
}

func (m *MockSampleUsecase) GetBoard(ctx context.Context, tab string) (*responses.BoardSnapshot, error) {
	args := m.Called(ctx, tab)
	snapshot, _ := args.Get(0).(*responses.BoardSnapshot)
	return snapshot, args.Error(1)
}

func (m *MockSampleUsecase) TransitionSample(ctx context.Context, tab string, bookingID int64, action string, request *requests.CancelBooking) (*responses.BoardSnapshot, error) {
	args := m.Called(ctx, tab, bookingID, action, request)
	snapshot, _ := args.Get(0).(*responses.BoardSnapshot)
	return snapshot, args.Error(1)
}

func (m *MockSampleUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error) {
	args := m.Called(ctx, request)
	booking, _ := args.Get(0).(*models.TestBooking)
	return booking, args.Error(1)
}

func (m *MockSampleUsecase) RunIntegratedWorkflow(ctx context.Context, request *requests.CreateBooking) (*responses.IntegratedWorkflow, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.IntegratedWorkflow)
	return result, args.Error(1)
}

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) OpenReportForm(ctx context.Context, bookingID int64) (*responses.ReportForm, error) {
	args := m.Called(ctx, bookingID)
	form, _ := args.Get(0).(*responses.ReportForm)
	return form, args.Error(1)
}

func (m *MockReportUsecase) SaveReport(ctx context.Context, bookingID int64, request *requests.SubmitReport) (*models.TestReport, error) {
	args := m.Called(ctx, bookingID, request)
	report, _ := args.Get(0).(*models.TestReport)
	return report, args.Error(1)
}

func (m *MockReportUsecase) GetReportView(ctx context.Context, reportID int64) (*responses.ReportView, error) {
	args := m.Called(ctx, reportID)
	view, _ := args.Get(0).(*responses.ReportView)
	return view, args.Error(1)
}

func (m *MockReportUsecase) DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error) {
	args := m.Called(ctx, reportID)
	document, _ := args.Get(0).(*responses.ReportDocument)
	return document, args.Error(1)
}

func (m *MockReportUsecase) NotifyPatient(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}
