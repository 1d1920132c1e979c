package samples

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/lifecycle"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const stepBook = "book"

// RunIntegratedWorkflow books a test, collects the sample and starts
// processing as three sequential calls. It stops at the first failure and
// leaves the booking wherever the last successful call put it.
func RunIntegratedWorkflow(ctx context.Context, bookings contracts.BookingApiClient, events contracts.EventPublisher, log *zap.Logger, request *requests.CreateBooking) *responses.IntegratedWorkflow {
	requestID := utils.GetRequestID(ctx)
	log.Info("samples.RunIntegratedWorkflow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTestIDKey, request.TestID),
	)

	result := &responses.IntegratedWorkflow{CompletedSteps: []string{}}
	fail := func(step string, err error) *responses.IntegratedWorkflow {
		log.Error("samples.RunIntegratedWorkflow stopped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, step),
			zap.Error(err),
		)
		result.FailedStep = step
		result.Error = utils.BannerMessage(constvars.BannerPrefixIntegrated, err)
		return result
	}

	booking, err := bookings.CreateBooking(ctx, request)
	if err != nil {
		return fail(stepBook, err)
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusBooked
	}
	result.Booking = booking
	result.CompletedSteps = append(result.CompletedSteps, stepBook)

	steps := []struct {
		action lifecycle.Action
		call   func(ctx context.Context, bookingID int64) (*models.TestBooking, error)
	}{
		{lifecycle.ActionCollect, bookings.MarkSampleCollected},
		{lifecycle.ActionStartProcessing, bookings.MarkProcessing},
	}
	for _, step := range steps {
		if _, err := step.call(ctx, booking.ID); err != nil {
			return fail(step.action.String(), err)
		}

		from := booking.Status
		if next, err := lifecycle.Next(from, step.action); err == nil {
			booking.Status = next
		}
		result.CompletedSteps = append(result.CompletedSteps, step.action.String())

		publishTransition(ctx, events, log, &models.BookingTransitionedEvent{
			BookingID:  booking.ID,
			Action:     step.action.String(),
			From:       from,
			To:         booking.Status,
			OccurredAt: time.Now().UTC(),
			RequestID:  requestID,
		})
	}

	log.Info("samples.RunIntegratedWorkflow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
	)
	return result
}

// publishTransition emits a lifecycle event. Failures are only logged.
func publishTransition(ctx context.Context, events contracts.EventPublisher, log *zap.Logger, event *models.BookingTransitionedEvent) {
	if events == nil {
		return
	}
	err := events.PublishBookingTransitioned(ctx, event)
	if err != nil {
		log.Warn("samples.publishTransition failed",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
			zap.Error(err),
		)
	}
}
