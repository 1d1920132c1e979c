package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"decimal":  "must be a decimal amount",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientValidationFailed              = "please correct the highlighted fields"
	ErrClientInvalidTransition             = "this action is not available for the sample's current status"
	ErrClientBoardBusy                     = "another action is still in progress, please wait"
	ErrClientLabServiceUnavailable         = "the laboratory service is unavailable"
	ErrClientReportNotEditable             = "reports can only be edited while the sample is processing"
)

// Banner prefixes shown in front of the lab server's message
const (
	BannerPrefixLoadSamples     = "Failed to fetch samples"
	BannerPrefixCollect         = "Failed to mark sample as collected"
	BannerPrefixStartProcessing = "Failed to start processing"
	BannerPrefixMarkReviewed    = "Failed to mark sample as reviewed"
	BannerPrefixMarkCompleted   = "Failed to mark sample as completed"
	BannerPrefixCancel          = "Failed to cancel booking"
	BannerPrefixBook            = "Failed to create booking"
	BannerPrefixIntegrated      = "Failed to complete workflow"
	BannerPrefixOpenReport      = "Failed to load report"
	BannerPrefixSaveReport      = "Failed to save report"
	BannerPrefixDownloadReport  = "Failed to download report"
	BannerPrefixNotifyPatient   = "Failed to notify patient"

	BannerFallbackMessage = "Unknown error"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSessionData       = "session data missing from context"
	ErrDevURLParamIDValidation     = "parameter %s validation failed"
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidTransition        = "action %s is not allowed from status %s"
	ErrDevUnknownStatus            = "unknown booking status %q"
	ErrDevUnknownAction            = "unknown lifecycle action %q"
	ErrDevBoardBusy                = "board is loading, action %s refused"
	ErrDevReportNotEditable        = "booking %d is %s, reports are editable only while processing"
	ErrDevServerProcess            = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerParseSessionData   = "failed to parse session data"
	ErrDevAuthTokenMissing         = "token missing"
	ErrDevAuthTokenInvalidOrExpire = "invalid or expired token"
	ErrDevAuthSessionNotFound      = "session not found"
	ErrDevAuthPermissionDenied     = "permission denied for role %s on %s %s"

	// Lab backend messages
	ErrDevLabCallFailed         = "lab backend answered %d on %s %s"
	ErrDevLabDecodeResponse     = "failed to decode %s response from lab backend"
	ErrDevLabResourceNotFound   = "no %s found on lab backend"
	ErrDevLabResourceNotCreated = "lab backend did not return the created %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to exchange %s"
	ErrDevRabbitMQNotConfirmed   = "broker did not confirm message on exchange %s"

	// Token file messages
	ErrDevTokenFileRead  = "failed to read token file %s"
	ErrDevTokenFileWrite = "failed to write token file %s"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
