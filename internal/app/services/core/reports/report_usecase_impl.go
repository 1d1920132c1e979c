package reports

import (
	"context"
	"fmt"
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

type reportUsecase struct {
	BookingApiClient contracts.BookingApiClient
	ReportApiClient  contracts.ReportApiClient
	TestApiClient    contracts.TestApiClient
	ReportArchive    contracts.ReportArchive
	Log              *zap.Logger
}

// NewReportUsecase wires the report workflow. reportArchive may be nil when
// archiving is disabled.
func NewReportUsecase(
	bookingApiClient contracts.BookingApiClient,
	reportApiClient contracts.ReportApiClient,
	testApiClient contracts.TestApiClient,
	reportArchive contracts.ReportArchive,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		BookingApiClient: bookingApiClient,
		ReportApiClient:  reportApiClient,
		TestApiClient:    testApiClient,
		ReportArchive:    reportArchive,
		Log:              logger,
	}
}

func (uc *reportUsecase) OpenReportForm(ctx context.Context, bookingID int64) (*responses.ReportForm, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.OpenReportForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.findReport(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	test, err := uc.TestApiClient.FindTestByID(ctx, testIDOf(booking))
	if err != nil {
		uc.Log.Error("reportUsecase.OpenReportForm error fetching test template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTestIDKey, testIDOf(booking)),
			zap.Error(err),
		)
		return nil, err
	}

	form := &responses.ReportForm{
		BookingID: bookingID,
		TestID:    test.ID,
		TestName:  test.Name,
		Entries:   Prefill(test, existing),
	}
	if existing != nil {
		reportID := existing.ID
		form.ReportID = &reportID
		form.TechnicianNotes = existing.TechnicianNotes
	}

	uc.Log.Info("reportUsecase.OpenReportForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(form.Entries)),
	)
	return form, nil
}

func (uc *reportUsecase) SaveReport(ctx context.Context, bookingID int64, request *requests.SubmitReport) (*models.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.SaveReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	_, err = uc.editableBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	report, err := uc.findReport(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		report, err = uc.ReportApiClient.CreateDraftReport(ctx, bookingID)
		if err != nil {
			uc.Log.Error("reportUsecase.SaveReport error creating draft",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	submitted, err := uc.ReportApiClient.SubmitReport(ctx, report.ID, request)
	if err != nil {
		uc.Log.Error("reportUsecase.SaveReport error submitting report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingReportIDKey, report.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("reportUsecase.SaveReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, submitted.ID),
	)
	return submitted, nil
}

func (uc *reportUsecase) GetReportView(ctx context.Context, reportID int64) (*responses.ReportView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.GetReportView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	report, err := uc.ReportApiClient.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	// the view still renders without the template, only names and flags are lost
	var test *models.Test
	booking, err := uc.BookingApiClient.FindBookingByID(ctx, report.TestBookingID)
	if err == nil {
		test, err = uc.TestApiClient.FindTestByID(ctx, testIDOf(booking))
	}
	if err != nil {
		uc.Log.Warn("reportUsecase.GetReportView template unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, report.TestBookingID),
			zap.Error(err),
		)
		test = nil
	}

	view := BuildView(report, test)
	uc.Log.Info("reportUsecase.GetReportView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(view.Rows)),
	)
	return view, nil
}

func (uc *reportUsecase) DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.DownloadReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	document, err := uc.ReportApiClient.DownloadReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if uc.ReportArchive != nil {
		objectName, err := uc.ReportArchive.ArchiveReport(ctx, document)
		if err != nil {
			uc.Log.Warn("reportUsecase.DownloadReport archive failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingReportIDKey, reportID),
				zap.Error(err),
			)
		} else {
			document.ArchiveObject = objectName
		}
	}

	uc.Log.Info("reportUsecase.DownloadReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(document.Content)),
	)
	return document, nil
}

func (uc *reportUsecase) NotifyPatient(ctx context.Context, reportID int64) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.NotifyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	err := uc.ReportApiClient.NotifyPatient(ctx, reportID)
	if err != nil {
		uc.Log.Error("reportUsecase.NotifyPatient error from lab backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("reportUsecase.NotifyPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// editableBooking loads a booking and refuses it unless its report is open
// for entry.
func (uc *reportUsecase) editableBooking(ctx context.Context, bookingID int64) (*models.TestBooking, error) {
	booking, err := uc.BookingApiClient.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.CanEditReport(booking.Status) {
		err := fmt.Errorf("booking %d has status %s", bookingID, booking.Status)
		return nil, exceptions.ErrReportNotEditable(err, bookingID, booking.Status.String())
	}
	return booking, nil
}

// findReport returns the first report filed for the booking, or nil.
func (uc *reportUsecase) findReport(ctx context.Context, bookingID int64) (*models.TestReport, error) {
	reports, err := uc.ReportApiClient.FindReportsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

func testIDOf(booking *models.TestBooking) int64 {
	if booking.TestID == 0 && booking.Test != nil {
		return booking.Test.ID
	}
	return booking.TestID
}
