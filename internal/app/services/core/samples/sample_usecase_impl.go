package samples

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/lifecycle"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sampleUsecase struct {
	BookingApiClient contracts.BookingApiClient
	EventPublisher   contracts.EventPublisher
	Log              *zap.Logger
}

// NewSampleUsecase builds one board per call. eventPublisher may be nil.
func NewSampleUsecase(bookingApiClient contracts.BookingApiClient, eventPublisher contracts.EventPublisher, logger *zap.Logger) contracts.SampleUsecase {
	return &sampleUsecase{
		BookingApiClient: bookingApiClient,
		EventPublisher:   eventPublisher,
		Log:              logger,
	}
}

func (uc *sampleUsecase) GetBoard(ctx context.Context, tab string) (*responses.BoardSnapshot, error) {
	status, err := ParseTab(tab)
	if err != nil {
		return nil, err
	}

	board := NewBoard(uc.BookingApiClient, uc.EventPublisher, uc.Log, status)
	board.Load(ctx)
	return board.Snapshot(), nil
}

func (uc *sampleUsecase) TransitionSample(ctx context.Context, tab string, bookingID int64, action string, request *requests.CancelBooking) (*responses.BoardSnapshot, error) {
	status, err := ParseTab(tab)
	if err != nil {
		return nil, err
	}
	parsedAction, err := lifecycle.ParseAction(action)
	if err != nil {
		return nil, err
	}

	notes := ""
	if request != nil {
		notes = request.Notes
	}

	board := NewBoard(uc.BookingApiClient, uc.EventPublisher, uc.Log, status)
	board.Load(ctx)
	board.Apply(ctx, bookingID, parsedAction, notes)
	return board.Snapshot(), nil
}

func (uc *sampleUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sampleUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	booking, err := uc.BookingApiClient.CreateBooking(ctx, request)
	if err != nil {
		uc.Log.Error("sampleUsecase.CreateBooking error from lab backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("sampleUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
	)
	return booking, nil
}

func (uc *sampleUsecase) RunIntegratedWorkflow(ctx context.Context, request *requests.CreateBooking) (*responses.IntegratedWorkflow, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return RunIntegratedWorkflow(ctx, uc.BookingApiClient, uc.EventPublisher, uc.Log, request), nil
}
