package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingSessionIDKey  = "session_id"
	LoggingUserIDKey     = "user_id"
	LoggingRoleKey       = "role"
	LoggingLanguageKey   = "language"
	LoggingResourceKey   = "resource"
)
