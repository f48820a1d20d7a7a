package constant

const (
	RequestParamSearch        = "search"
	RequestParamRoomType      = "type"
	RequestParamRoomTypeQuery = "room_type"
	RequestParamRoomNumber    = "room_number"
	RequestParamCheckIn       = "check_in"
	RequestParamCheckOut      = "check_out"
	RequestParamName          = "name"
)

const (
	// DateFormat is the calendar-day layout used for check-in and check-out dates.
	DateFormat = "2006-01-02"
)

const (
	LockModeNone   = "none"
	LockModeGlobal = "global"
	LockModeRoom   = "room"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
