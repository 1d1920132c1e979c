package samples

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"

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

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingTransitioned(ctx context.Context, event *models.BookingTransitionedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
