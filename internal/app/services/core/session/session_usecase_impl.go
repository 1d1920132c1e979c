package session

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	AuthApiClient     contracts.AuthApiClient
	SessionRepository contracts.SessionRepository
	DefaultTTL        time.Duration
	Log               *zap.Logger
	now               func() time.Time
}

// NewSessionUsecase builds the login flow. defaultTTL sizes sessions whose
// backend token carries no readable expiry.
func NewSessionUsecase(authApiClient contracts.AuthApiClient, sessionRepository contracts.SessionRepository, defaultTTL time.Duration, logger *zap.Logger) contracts.SessionUsecase {
	return &sessionUsecase{
		AuthApiClient:     authApiClient,
		SessionRepository: sessionRepository,
		DefaultTTL:        defaultTTL,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *sessionUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	grant, err := uc.AuthApiClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("sessionUsecase.Login error from lab backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	expiresAt, ok := utils.TokenExpiry(grant.Token)
	if !ok || !expiresAt.After(now) {
		expiresAt = now.Add(uc.DefaultTTL)
	}

	session := &models.Session{
		ID:        utils.GenerateSessionID(),
		Token:     grant.Token,
		User:      grant.User,
		ExpiresAt: expiresAt,
	}
	err = uc.SessionRepository.Save(ctx, session, expiresAt.Sub(now))
	if err != nil {
		uc.Log.Error("sessionUsecase.Login error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("sessionUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
		zap.String(constvars.LoggingRoleKey, session.User.Role),
	)
	return &responses.Session{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		User:      session.User,
	}, nil
}

// CheckSession confirms the stored token with the lab backend. Only a 401
// ends the session; any other failure leaves it in place.
func (uc *sessionUsecase) CheckSession(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.CheckSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.AuthApiClient.FindCurrentUser(WithBackendToken(ctx, session.Token))
	if labapi.IsUnauthorized(err) {
		uc.Log.Info("sessionUsecase.CheckSession token rejected, ending session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		deleteErr := uc.SessionRepository.Delete(ctx, sessionID)
		if deleteErr != nil {
			uc.Log.Warn("sessionUsecase.CheckSession error deleting session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(deleteErr),
			)
		}
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if err != nil {
		return nil, err
	}

	session.User = *user
	uc.Log.Info("sessionUsecase.CheckSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return session, nil
}

func (uc *sessionUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionRepository.Find(ctx, sessionID)
	if err != nil {
		return err
	}

	err = uc.AuthApiClient.Logout(WithBackendToken(ctx, session.Token))
	if err != nil {
		uc.Log.Warn("sessionUsecase.Logout lab backend logout failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	err = uc.SessionRepository.Delete(ctx, sessionID)
	if err != nil {
		return err
	}

	uc.Log.Info("sessionUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
