package contracts

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
)

type ReportApiClient interface {
	CreateDraftReport(ctx context.Context, bookingID int64) (*models.TestReport, error)
	SubmitReport(ctx context.Context, reportID int64, request *requests.SubmitReport) (*models.TestReport, error)
	FindReportByID(ctx context.Context, reportID int64) (*models.TestReport, error)
	FindReportsByBookingID(ctx context.Context, bookingID int64) ([]models.TestReport, error)
	DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error)
	NotifyPatient(ctx context.Context, reportID int64) error
}

type TestApiClient interface {
	FindTestByID(ctx context.Context, testID int64) (*models.Test, error)
}

type ReportUsecase interface {
	OpenReportForm(ctx context.Context, bookingID int64) (*responses.ReportForm, error)
	SaveReport(ctx context.Context, bookingID int64, request *requests.SubmitReport) (*models.TestReport, error)
	GetReportView(ctx context.Context, reportID int64) (*responses.ReportView, error)
	DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error)
	NotifyPatient(ctx context.Context, reportID int64) error
}

type ReportArchive interface {
	ArchiveReport(ctx context.Context, document *responses.ReportDocument) (objectName string, err error)
}
