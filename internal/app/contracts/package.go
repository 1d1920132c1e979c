package contracts

import (
	"context"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
)

type PackageUsecase interface {
	CalculateSavings(ctx context.Context, request *requests.PackageSavings) (*responses.PackageQuote, error)
}
