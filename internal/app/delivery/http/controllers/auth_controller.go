package controllers

import (
	"context"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/delivery/http/middlewares"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.SessionUsecase.Login(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	err = ctrl.SessionUsecase.Logout(ctx, sessionData.ID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) CheckSession(w http.ResponseWriter, r *http.Request) {
	sessionData, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	checked, err := ctrl.SessionUsecase.CheckSession(ctx, sessionData.ID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionValidSuccess, responses.Session{
		ExpiresAt: checked.ExpiresAt,
		User:      checked.User,
	})
}
