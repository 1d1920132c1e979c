package bookings

import (
	"context"
	"fmt"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"net/url"

	"go.uber.org/zap"
)

type bookingApiClient struct {
	Requester *labapi.Requester
	Log       *zap.Logger
}

func NewBookingApiClient(requester *labapi.Requester, logger *zap.Logger) contracts.BookingApiClient {
	return &bookingApiClient{
		Requester: requester,
		Log:       logger,
	}
}

func (c *bookingApiClient) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.TestBooking, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingApiClient.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTestIDKey, request.TestID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   constvars.ResourceTestBookings,
		Body:   request,
	})
	if err != nil {
		return nil, err
	}

	booking := new(models.TestBooking)
	err = labapi.DecodeData(resp.Body, booking, constvars.LabResourceBooking)
	if err != nil {
		c.Log.Error("bookingApiClient.CreateBooking error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking.ID == 0 {
		return nil, exceptions.ErrLabResourceNotCreated(nil, constvars.LabResourceBooking)
	}

	c.Log.Info("bookingApiClient.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, booking.ID),
	)
	return booking, nil
}

func (c *bookingApiClient) FindBookingByID(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingApiClient.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%d", constvars.ResourceTestBookings, bookingID),
	})
	if err != nil {
		return nil, err
	}

	booking := new(models.TestBooking)
	err = labapi.DecodeData(resp.Body, booking, constvars.LabResourceBooking)
	if err != nil {
		return nil, err
	}
	if booking.ID == 0 {
		return nil, exceptions.ErrNoDataLabResource(nil, constvars.LabResourceBooking)
	}

	c.Log.Info("bookingApiClient.FindBookingByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, booking.Status.String()),
	)
	return booking, nil
}

func (c *bookingApiClient) FindBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.TestBooking, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingApiClient.FindBookingsByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status.String()),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamStatus, status.String())

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   constvars.ResourceTestBookings,
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	bookings := []models.TestBooking{}
	err = labapi.DecodeData(resp.Body, &bookings, constvars.LabResourceBooking)
	if err != nil {
		return nil, err
	}

	c.Log.Info("bookingApiClient.FindBookingsByStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (c *bookingApiClient) MarkSampleCollected(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return c.transition(ctx, "MarkSampleCollected", bookingID, constvars.PathMarkSampleCollected, nil)
}

func (c *bookingApiClient) MarkProcessing(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return c.transition(ctx, "MarkProcessing", bookingID, constvars.PathMarkProcessing, nil)
}

func (c *bookingApiClient) MarkReviewed(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return c.transition(ctx, "MarkReviewed", bookingID, constvars.PathMarkReviewed, nil)
}

func (c *bookingApiClient) MarkCompleted(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	return c.transition(ctx, "MarkCompleted", bookingID, constvars.PathMarkCompleted, nil)
}

func (c *bookingApiClient) CancelBooking(ctx context.Context, bookingID int64, request *requests.CancelBooking) (*models.TestBooking, error) {
	if request == nil {
		request = &requests.CancelBooking{}
	}
	return c.transition(ctx, "CancelBooking", bookingID, constvars.PathCancel, request)
}

// transition posts to one of the booking action endpoints. The backend may
// answer with the updated booking or with a bare message, so the returned
// booking can be empty.
func (c *bookingApiClient) transition(ctx context.Context, method string, bookingID int64, subPath string, body interface{}) (*models.TestBooking, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingApiClient."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   fmt.Sprintf("%s/%d/%s", constvars.ResourceTestBookings, bookingID, subPath),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	booking := new(models.TestBooking)
	err = labapi.DecodeData(resp.Body, booking, constvars.LabResourceBooking)
	if err != nil {
		return nil, err
	}

	c.Log.Info("bookingApiClient."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)
	return booking, nil
}
