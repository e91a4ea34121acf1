package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"eqfield":   "must match %s",
	"oneof":     "must be one of [%s]",
	"numeric":   "must be a number",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"url":       "must be a valid URL",
	"ogec_role": "must be a valid OGEC role",
	"language":  "must be one of [en fr ar]",
	"theme":     "must be one of [light dark]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gte":     true,
	"lte":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNoResponseFromServer          = "no response from server, please check your connection"
	ErrClientAccountPendingApproval        = "your account is awaiting approval"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientImageTooLarge                 = "the image you uploaded exceeds the allowed size"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed            = "validation failed"
	ErrDevInvalidRequestPayload       = "invalid request payload"
	ErrDevURLParamIDValidationFailed  = "parameter %s validation failed"
	ErrDevCannotParseMultipartForm    = "cannot parse multipart form body"
	ErrDevServerDeadlineExceeded      = "the server exceeded its own operation deadline"
	ErrDevMissingRequestID            = "request id not found in request context"
	ErrDevMissingSession              = "session not found in request context"
	ErrDevInvalidCredentials          = "invalid credentials"
	ErrDevMalformedUpstreamResponse   = "upstream login response missing user or access_token"
	ErrDevAuthSigningMethod           = "unexpected signing method"
	ErrDevAuthTokenMissing            = "token missing"
	ErrDevAuthTokenInvalidOrExpired   = "invalid or expired token"
	ErrDevAuthInvalidSession          = "invalid session"
	ErrDevAuthGenerateToken           = "failed to generate token"
	ErrDevAuthPermissionDenied        = "permission denied"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevUpstreamUnreachable         = "no response received from the OGEC backend"
	ErrDevUpstreamRejected            = "the OGEC backend rejected the request: %s"
	ErrDevUpstreamDecodeResponse      = "failed to decode %s response from the OGEC backend"
	ErrDevUpstreamUnauthorized        = "the OGEC backend denied authorization for the stored token"
	ErrDevRedisStoreSession           = "failed to store session in redis"
	ErrDevRedisGetNoData              = "failed to get data with key %s from redis"
	ErrDevRedisSet                    = "failed to set value to redis"
	ErrDevRedisDelete                 = "failed to delete value from redis"
	ErrDevUnsupportedLanguage         = "unsupported language code"
	ErrDevUnsupportedTheme            = "unsupported theme value"
	ErrDevMinioUploadObject           = "failed to upload object to bucket %s"
	ErrDevImageValidationFailed       = "image validation failed"
)
