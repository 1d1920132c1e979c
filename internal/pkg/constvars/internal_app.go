package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_BACKEND_TOKEN_KEY        ContextKey = "backend_token"
	CONTEXT_REQUEST_ACTOR_KEY        ContextKey = "request_actor"
)

const (
	REQUEST_ID_PREFIX = "MLX_GW_"
)

const (
	APP_ENV_DEVELOPMENT = "development"
	APP_ENV_PRODUCTION  = "production"
)

const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleLabTechnician = "lab_technician"
	RolePatient       = "patient"
)

const (
	RedisSessionKeyPrefix = "medilabx:session:"
)

const (
	// RabbitMQ exchange/routing for lifecycle events
	EventsExchangeName          = "medilabx.lab"
	EventRoutingKeyTransitioned = "booking.transitioned"
)
