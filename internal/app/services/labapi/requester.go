package labapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Requester sends authenticated calls to the MediLabX REST backend and turns
// its error bodies into CustomErrors carrying the backend's message.
type Requester struct {
	BaseUrl    string
	HTTPClient *http.Client
	Tokens     contracts.TokenSource
	Log        *zap.Logger
}

type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Accept string
	// Anonymous skips the bearer token, used for login.
	Anonymous bool
}

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func NewRequester(baseUrl string, timeout time.Duration, tokens contracts.TokenSource, logger *zap.Logger) *Requester {
	return &Requester{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Log:        logger,
	}
}

func (r *Requester) Do(ctx context.Context, call Call) (*Response, error) {
	requestID := utils.GetRequestID(ctx)

	endpoint := r.BaseUrl + call.Path
	if len(call.Query) > 0 {
		endpoint += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		requestJSON, err := json.Marshal(call.Body)
		if err != nil {
			r.Log.Error("Requester.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, endpoint, body)
	if err != nil {
		r.Log.Error("Requester.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	accept := call.Accept
	if accept == "" {
		accept = constvars.MIMEApplicationJSON
	}
	req.Header.Set(constvars.HeaderAccept, accept)
	if call.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	if !call.Anonymous {
		token, err := r.Tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.Log.Error("Requester.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, call.Method),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Log.Error("Requester.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverMessage := gjson.GetBytes(respBody, constvars.LabEnvelopeMessageKey).String()
		r.Log.Error("Requester.Do lab backend rejected the call",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, call.Method),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, serverMessage),
		)
		return nil, exceptions.ErrLabCallFailed(resp.StatusCode, serverMessage, call.Method, call.Path)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get(constvars.HeaderContentType),
		Body:        respBody,
	}, nil
}

// DecodeData decodes a backend body into dst, unwrapping the {"data": ...}
// envelope when the backend sends one. An empty body leaves dst untouched.
func DecodeData(body []byte, dst interface{}, resource string) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	payload := body
	if gjson.ValidBytes(body) {
		if data := gjson.GetBytes(body, constvars.LabEnvelopeDataKey); data.Exists() {
			payload = []byte(data.Raw)
		}
	}

	err := json.Unmarshal(payload, dst)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}

// IsUnauthorized reports whether the lab backend rejected the bearer token.
func IsUnauthorized(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.FromLabBackend && customErr.StatusCode == constvars.StatusUnauthorized
}

// StaticTokenSource always hands out the same bearer token.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return string(s), nil
}
