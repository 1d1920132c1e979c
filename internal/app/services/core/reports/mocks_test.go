package reports

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockBookingApiClient struct {
	mock.Mock
}

func bookingResult(args mock.Arguments) (*models.TestBooking, error) {
	booking, _ := args.Get(0).(*models.TestBooking)
	return booking, args.Error(1)
}

func (m *MockBookingApiClient) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, request))
}

func (m *MockBookingApiClient) FindBookingByID(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID))
}

func (m *MockBookingApiClient) FindBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.TestBooking, error) {
	args := m.Called(ctx, status)
	bookings, _ := args.Get(0).([]models.TestBooking)
	return bookings, args.Error(1)
}

func (m *MockBookingApiClient) MarkSampleCollected(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID))
}

func (m *MockBookingApiClient) MarkProcessing(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID))
}

func (m *MockBookingApiClient) MarkReviewed(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID))
}

func (m *MockBookingApiClient) MarkCompleted(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID))
}

func (m *MockBookingApiClient) CancelBooking(ctx context.Context, bookingID int64, request *requests.CancelBooking) (*models.TestBooking, error) {
	return bookingResult(m.Called(ctx, bookingID, request))
}

type MockReportApiClient struct {
	mock.Mock
}

func reportResult(args mock.Arguments) (*models.TestReport, error) {
	report, _ := args.Get(0).(*models.TestReport)
	return report, args.Error(1)
}

func (m *MockReportApiClient) CreateDraftReport(ctx context.Context, bookingID int64) (*models.TestReport, error) {
	return reportResult(m.Called(ctx, bookingID))
}

func (m *MockReportApiClient) SubmitReport(ctx context.Context, reportID int64, request *requests.SubmitReport) (*models.TestReport, error) {
	return reportResult(m.Called(ctx, reportID, request))
}

func (m *MockReportApiClient) FindReportByID(ctx context.Context, reportID int64) (*models.TestReport, error) {
	return reportResult(m.Called(ctx, reportID))
}

func (m *MockReportApiClient) FindReportsByBookingID(ctx context.Context, bookingID int64) ([]models.TestReport, error) {
	args := m.Called(ctx, bookingID)
	reports, _ := args.Get(0).([]models.TestReport)
	return reports, args.Error(1)
}

func (m *MockReportApiClient) DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error) {
	args := m.Called(ctx, reportID)
	document, _ := args.Get(0).(*responses.ReportDocument)
	return document, args.Error(1)
}

func (m *MockReportApiClient) NotifyPatient(ctx context.Context, reportID int64) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

type MockTestApiClient struct {
	mock.Mock
}

func (m *MockTestApiClient) FindTestByID(ctx context.Context, testID int64) (*models.Test, error) {
	args := m.Called(ctx, testID)
	test, _ := args.Get(0).(*models.Test)
	return test, args.Error(1)
}

type MockReportArchive struct {
	mock.Mock
}

func (m *MockReportArchive) ArchiveReport(ctx context.Context, document *responses.ReportDocument) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}
