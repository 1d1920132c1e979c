package packages

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type packageUsecase struct {
	Log *zap.Logger
}

func NewPackageUsecase(logger *zap.Logger) contracts.PackageUsecase {
	return &packageUsecase{
		Log: logger,
	}
}

func (uc *packageUsecase) CalculateSavings(ctx context.Context, request *requests.PackageSavings) (*responses.PackageQuote, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("packageUsecase.CalculateSavings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(request.RegularPrices)),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	prices := make([]decimal.Decimal, 0, len(request.RegularPrices))
	for _, price := range request.RegularPrices {
		prices = append(prices, decimal.RequireFromString(price))
	}
	quote := Savings(prices, decimal.RequireFromString(request.PackagePrice))

	uc.Log.Info("packageUsecase.CalculateSavings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("savings_percentage", quote.SavingsPercentage.String()),
	)
	return &quote, nil
}
