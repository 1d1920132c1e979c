package controllers

import (
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PackageController struct {
	Log            *zap.Logger
	PackageUsecase contracts.PackageUsecase
}

func NewPackageController(logger *zap.Logger, packageUsecase contracts.PackageUsecase) *PackageController {
	return &PackageController{
		Log:            logger,
		PackageUsecase: packageUsecase,
	}
}

func (ctrl *PackageController) CalculateSavings(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PackageSavings)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	quote, err := ctrl.PackageUsecase.CalculateSavings(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculatePackageSavingsSuccess, quote)
}
