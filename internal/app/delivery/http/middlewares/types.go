package middlewares

import (
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository contracts.SessionRepository
	Authorizer        contracts.Authorizer
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionRepository contracts.SessionRepository, authorizer contracts.Authorizer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionRepository: sessionRepository,
		Authorizer:        authorizer,
		InternalConfig:    internalConfig,
	}
}
