package reports

import (
	"context"
	"fmt"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type reportApiClient struct {
	Requester *labapi.Requester
	Log       *zap.Logger
}

func NewReportApiClient(requester *labapi.Requester, logger *zap.Logger) contracts.ReportApiClient {
	return &reportApiClient{
		Requester: requester,
		Log:       logger,
	}
}

func (c *reportApiClient) CreateDraftReport(ctx context.Context, bookingID int64) (*models.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.CreateDraftReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   fmt.Sprintf("%s/%d/%s", constvars.ResourceTestBookings, bookingID, constvars.PathReports),
	})
	if err != nil {
		return nil, err
	}

	report := new(models.TestReport)
	err = labapi.DecodeData(resp.Body, report, constvars.LabResourceReport)
	if err != nil {
		return nil, err
	}
	if report.ID == 0 {
		c.Log.Error("reportApiClient.CreateDraftReport backend returned no report id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrLabResourceNotCreated(nil, constvars.LabResourceReport)
	}

	c.Log.Info("reportApiClient.CreateDraftReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, report.ID),
	)
	return report, nil
}

func (c *reportApiClient) SubmitReport(ctx context.Context, reportID int64, request *requests.SubmitReport) (*models.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.SubmitReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   fmt.Sprintf("%s/%d/%s", constvars.ResourceReports, reportID, constvars.PathSubmit),
		Body:   request,
	})
	if err != nil {
		return nil, err
	}

	report := new(models.TestReport)
	err = labapi.DecodeData(resp.Body, report, constvars.LabResourceReport)
	if err != nil {
		return nil, err
	}
	if report.ID == 0 {
		report.ID = reportID
	}

	c.Log.Info("reportApiClient.SubmitReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)
	return report, nil
}

func (c *reportApiClient) FindReportByID(ctx context.Context, reportID int64) (*models.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.FindReportByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%d", constvars.ResourceReports, reportID),
	})
	if err != nil {
		return nil, err
	}

	report := new(models.TestReport)
	err = labapi.DecodeData(resp.Body, report, constvars.LabResourceReport)
	if err != nil {
		return nil, err
	}
	if report.ID == 0 {
		return nil, exceptions.ErrNoDataLabResource(nil, constvars.LabResourceReport)
	}

	c.Log.Info("reportApiClient.FindReportByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, report.TestBookingID),
	)
	return report, nil
}

func (c *reportApiClient) FindReportsByBookingID(ctx context.Context, bookingID int64) ([]models.TestReport, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.FindReportsByBookingID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamTestBookingID, strconv.FormatInt(bookingID, 10))

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   constvars.ResourceReports,
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	reports := []models.TestReport{}
	err = labapi.DecodeData(resp.Body, &reports, constvars.LabResourceReport)
	if err != nil {
		return nil, err
	}

	c.Log.Info("reportApiClient.FindReportsByBookingID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(reports)),
	)
	return reports, nil
}

func (c *reportApiClient) DownloadReport(ctx context.Context, reportID int64) (*responses.ReportDocument, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.DownloadReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%d/%s", constvars.ResourceReports, reportID, constvars.PathDownload),
		Accept: constvars.MIMEApplicationPDF,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, exceptions.ErrNoDataLabResource(nil, constvars.LabResourceDocument)
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}

	c.Log.Info("reportApiClient.DownloadReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(resp.Body)),
	)
	return &responses.ReportDocument{
		ReportID:    reportID,
		FileName:    utils.GenerateReportFileName(reportID),
		ContentType: contentType,
		Content:     resp.Body,
	}, nil
}

func (c *reportApiClient) NotifyPatient(ctx context.Context, reportID int64) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("reportApiClient.NotifyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingReportIDKey, reportID),
	)

	_, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   fmt.Sprintf("%s/%d/%s", constvars.ResourceReports, reportID, constvars.PathNotify),
	})
	if err != nil {
		return err
	}

	c.Log.Info("reportApiClient.NotifyPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
