package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUsernameKey      = "username"
	LoggingSessionIDKey     = "session_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingPatientsCountKey = "patients_count"
	LoggingDenialsCountKey  = "denials_count"
	LoggingDateOfServiceKey = "date_of_service"
	LoggingResponseCountKey = "response_count"
)
