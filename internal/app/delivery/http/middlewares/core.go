package middlewares

import (
	"context"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}

// requestActor is filled by Authenticate so the access log can name the
// caller once the request has been served.
type requestActor struct {
	userID int64
	role   string
}

func withRequestActor(ctx context.Context) (context.Context, *requestActor) {
	actor := &requestActor{}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ACTOR_KEY, actor), actor
}

func recordActor(ctx context.Context, user models.User) {
	if actor, ok := ctx.Value(constvars.CONTEXT_REQUEST_ACTOR_KEY).(*requestActor); ok {
		actor.userID = user.ID
		actor.role = user.Role
	}
}

// Logging writes one access line per gateway request. Calls that passed
// Authenticate also carry the caller's user id and role, and routed calls
// carry their route pattern and path ids.
func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := utils.GetRequestID(r.Context())

			logger.Debug("API request started",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Any("is_client_request_id", r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY)),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			)

			ctx, actor := withRequestActor(r.Context())
			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			fields := []zap.Field{
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Int(constvars.LoggingResponseLengthKey, rec.written),
				zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < 400),
			}
			if actor.role != "" {
				fields = append(fields,
					zap.Int64(constvars.LoggingUserIDKey, actor.userID),
					zap.String(constvars.LoggingRoleKey, actor.role),
				)
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					fields = append(fields, zap.String(constvars.LoggingRouteKey, pattern))
				}
				if bookingID := rctx.URLParam("booking_id"); bookingID != "" {
					fields = append(fields, zap.String(constvars.LoggingBookingIDKey, bookingID))
				}
				if reportID := rctx.URLParam("report_id"); reportID != "" {
					fields = append(fields, zap.String(constvars.LoggingReportIDKey, reportID))
				}
				if action := rctx.URLParam("action"); action != "" {
					fields = append(fields, zap.String(constvars.LoggingActionKey, action))
				}
			}
			logger.Info("API request completed", fields...)
		})
	}
}

func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
