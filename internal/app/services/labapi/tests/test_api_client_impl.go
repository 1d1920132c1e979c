package tests

import (
	"context"
	"fmt"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/labapi"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type testApiClient struct {
	Requester *labapi.Requester
	Log       *zap.Logger
}

func NewTestApiClient(requester *labapi.Requester, logger *zap.Logger) contracts.TestApiClient {
	return &testApiClient{
		Requester: requester,
		Log:       logger,
	}
}

func (c *testApiClient) FindTestByID(ctx context.Context, testID int64) (*models.Test, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("testApiClient.FindTestByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTestIDKey, testID),
	)

	resp, err := c.Requester.Do(ctx, labapi.Call{
		Method: constvars.MethodGet,
		Path:   fmt.Sprintf("%s/%d", constvars.ResourceTests, testID),
	})
	if err != nil {
		return nil, err
	}

	test := new(models.Test)
	err = labapi.DecodeData(resp.Body, test, constvars.LabResourceTest)
	if err != nil {
		return nil, err
	}
	if test.ID == 0 {
		return nil, exceptions.ErrNoDataLabResource(nil, constvars.LabResourceTest)
	}

	c.Log.Info("testApiClient.FindTestByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(test.Parameters)),
	)
	return test, nil
}
