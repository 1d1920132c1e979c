package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingResponseLengthKey = "response_length"
	LoggingBookingIDKey      = "booking_id"
	LoggingReportIDKey       = "report_id"
	LoggingTestIDKey         = "test_id"
	LoggingStatusKey         = "status"
	LoggingActionKey         = "action"
	LoggingTabKey            = "tab"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingURLKey            = "url"
	LoggingObjectNameKey     = "object_name"
	LoggingExchangeKey       = "exchange"
	LoggingRoutingKey        = "routing_key"
	LoggingCountKey          = "count"
	LoggingRouteKey          = "route"
)
