package middlewares

import (
	"context"
	"errors"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/session"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer session id to a stored session and hands
// the session and its lab backend token down the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := bearerSessionID(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), m.InternalConfig.App.RequestTimeout())
		defer cancel()

		sessionData, err := m.SessionRepository.Find(ctx, sessionID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		m.Log.Debug("Middlewares.Authenticate session resolved",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Int64(constvars.LoggingUserIDKey, sessionData.User.ID),
			zap.String(constvars.LoggingRoleKey, sessionData.User.Role),
		)

		recordActor(r.Context(), sessionData.User)

		reqCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		reqCtx = session.WithBackendToken(reqCtx, sessionData.Token)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// RequirePermission checks the session role against the RBAC policy for the
// request path and method. It must run after Authenticate.
func (m *Middlewares) RequirePermission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, err := SessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		role := sessionData.User.Role
		path := policyPath(r.URL.Path)
		allowed, err := m.Authorizer.Authorize(role, path, r.Method)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			return
		}
		if !allowed {
			m.Log.Info("Middlewares.RequirePermission denied",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRoleKey, role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil, role, r.Method, path))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// policyPath drops a trailing slash so /samples/ matches the /samples policy
// the same way the router serves it.
func policyPath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

func SessionFromContext(ctx context.Context) (*models.Session, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || sessionData == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return sessionData, nil
}

func bearerSessionID(r *http.Request) (string, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	sessionID := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
	if sessionID == "" || sessionID == authHeader {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return sessionID, nil
}
