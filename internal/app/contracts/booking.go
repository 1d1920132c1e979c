package contracts

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
)

type BookingApiClient interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error)
	FindBookingByID(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	FindBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.TestBooking, error)
	MarkSampleCollected(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	MarkProcessing(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	MarkReviewed(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	MarkCompleted(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	CancelBooking(ctx context.Context, bookingID int64, request *requests.CancelBooking) (*models.TestBooking, error)
}

type SampleUsecase interface {
	GetBoard(ctx context.Context, tab string) (*responses.BoardSnapshot, error)
	TransitionSample(ctx context.Context, tab string, bookingID int64, action string, request *requests.CancelBooking) (*responses.BoardSnapshot, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error)
	RunIntegratedWorkflow(ctx context.Context, request *requests.CreateBooking) (*responses.IntegratedWorkflow, error)
}

type EventPublisher interface {
	PublishBookingTransitioned(ctx context.Context, event *models.BookingTransitionedEvent) error
}
