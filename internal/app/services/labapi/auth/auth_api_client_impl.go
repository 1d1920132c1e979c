package auth

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authApiClient struct {
	Requester *labapi.Requester
	Log       *zap.Logger
}

func NewAuthApiClient(requester *labapi.Requester, logger *zap.Logger) contracts.AuthApiClient {
	return &authApiClient{
		Requester: requester,
		Log:       logger,
	}
}

func (c *authApiClient) Login(ctx context.Context, request *requests.Login) (*models.AuthGrant, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authApiClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method:    constvars.MethodPost,
		Path:      constvars.ResourceLogin,
		Body:      request,
		Anonymous: true,
	})
	if err != nil {
		return nil, err
	}

	grant := new(models.AuthGrant)
	err = labapi.DecodeData(resp.Body, grant, constvars.LabResourceSession)
	if err != nil {
		return nil, err
	}
	if grant.Token == "" {
		c.Log.Error("authApiClient.Login backend returned no token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrLabResourceNotCreated(nil, constvars.LabResourceSession)
	}

	c.Log.Info("authApiClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, grant.User.ID),
		zap.String(constvars.LoggingRoleKey, grant.User.Role),
	)
	return grant, nil
}

func (c *authApiClient) FindCurrentUser(ctx context.Context) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authApiClient.FindCurrentUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   constvars.ResourceCurrentUser,
	})
	if err != nil {
		return nil, err
	}

	user := new(models.User)
	err = labapi.DecodeData(resp.Body, user, constvars.LabResourceSession)
	if err != nil {
		return nil, err
	}

	c.Log.Info("authApiClient.FindCurrentUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (c *authApiClient) Logout(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authApiClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodPost,
		Path:   constvars.ResourceLogout,
	})
	if err != nil {
		return err
	}

	c.Log.Info("authApiClient.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
