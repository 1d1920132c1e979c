package controllers

import (
	"context"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SampleController struct {
	Log            *zap.Logger
	SampleUsecase  contracts.SampleUsecase
	InternalConfig *config.InternalConfig
}

func NewSampleController(logger *zap.Logger, sampleUsecase contracts.SampleUsecase, internalConfig *config.InternalConfig) *SampleController {
	return &SampleController{
		Log:            logger,
		SampleUsecase:  sampleUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SampleController) GetSamples(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	snapshot, err := ctrl.SampleUsecase.GetBoard(ctx, r.URL.Query().Get(constvars.QueryParamTab))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSamplesSuccess, snapshot)
}

// TransitionSample applies one lifecycle action and answers with the
// refreshed board. A rejected action is reported in the board's error banner
// and still answers 200.
func (ctrl *SampleController) TransitionSample(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseIDParam(r, constvars.URLParamBookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	action := chi.URLParam(r, constvars.URLParamAction)

	request := new(requests.CancelBooking)
	err = utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	snapshot, err := ctrl.SampleUsecase.TransitionSample(ctx, r.URL.Query().Get(constvars.QueryParamTab), bookingID, action, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TransitionSampleSuccess, snapshot)
}

func (ctrl *SampleController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	booking, err := ctrl.SampleUsecase.CreateBooking(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccess, booking)
}

// RunIntegratedWorkflow answers 200 even when a step was rejected; the result
// then names the failed step and carries the banner as its message.
func (ctrl *SampleController) RunIntegratedWorkflow(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SampleUsecase.RunIntegratedWorkflow(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	message := constvars.IntegratedWorkflowSuccess
	if result.FailedStep != "" {
		message = result.Error
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
