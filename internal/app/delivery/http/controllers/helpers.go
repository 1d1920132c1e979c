package controllers

import (
	"context"
	"errors"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// respondError answers with err, turning an expired request context into a
// gateway timeout.
func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
