package controllers

import (
	"context"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) GetReportForm(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseIDParam(r, constvars.URLParamBookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	form, err := ctrl.ReportUsecase.OpenReportForm(ctx, bookingID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportFormSuccess, form)
}

func (ctrl *ReportController) SaveReport(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseIDParam(r, constvars.URLParamBookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SubmitReport)
	err = utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	report, err := ctrl.ReportUsecase.SaveReport(ctx, bookingID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveReportSuccess, report)
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseIDParam(r, constvars.URLParamReportID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	view, err := ctrl.ReportUsecase.GetReportView(ctx, reportID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccess, view)
}

func (ctrl *ReportController) DownloadReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseIDParam(r, constvars.URLParamReportID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	document, err := ctrl.ReportUsecase.DownloadReport(ctx, reportID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildBinaryResponse(w, document.ContentType, document.FileName, document.Content)
}

func (ctrl *ReportController) NotifyPatient(w http.ResponseWriter, r *http.Request) {
	reportID, err := utils.ParseIDParam(r, constvars.URLParamReportID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err = ctrl.ReportUsecase.NotifyPatient(ctx, reportID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotifyPatientSuccess, nil)
}
