package constvars

// Client-facing messages, rendered verbatim to the caller.
const (
	ErrClientSomethingWrongWithApplication = "Something wrong with the application"
	ErrClientCannotProcessRequest          = "Cannot process request"
	ErrClientServerLongRespond             = "Server takes too long to respond"
	ErrClientNotAuthorized                 = "You are not authorized"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in"
	ErrClientInvalidUsername               = "Invalid username"
	ErrClientInvalidDateFormat             = "No valid date format found"
	ErrClientInvalidDateOfBirth            = "Date of Birth must be MM/DD/YYYY"
	ErrClientInvalidAmount                 = "Amount must be a number with at most 2 decimals"
	ErrClientMissingDateOfService          = "Date of Service cannot be blank"
	ErrClientInvalidDenialStatus           = "Status must be one of Denied, Appealed, Paid, Write Off, Other"
	ErrClientPatientAlreadyExists          = "Patient already exists"
	ErrClientPatientNotFound               = "Patient not found"
)

// Developer-facing messages, logged but hidden from production responses.
const (
	ErrDevValidationFailed               = "Validation failed"
	ErrDevURLParamIDValidationFailed     = "URL param validation failed for: %s"
	ErrDevCannotParseJSON                = "Failed to parse JSON"
	ErrDevCannotMarshalJSON              = "Failed to marshal JSON"
	ErrDevCannotParseDate                = "Failed to parse date against accepted formats"
	ErrDevCannotParseAmount              = "Failed to parse currency amount"
	ErrDevMissingDateOfService           = "Date of service is empty"
	ErrDevInvalidDenialStatus            = "Denial status not in enumerated set"
	ErrDevServerDeadlineExceeded         = "Server deadline exceeded"
	ErrDevServerProcess                  = "Server failed to process"
	ErrDevUserNotExists                  = "User does not exist"
	ErrDevPatientAlreadyExists           = "Patient with identical name and date of birth already exists"
	ErrDevPatientNotExists               = "Patient does not exist"
	ErrDevAuthTokenMissing               = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired      = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken              = "Failed to generate session token"
	ErrDevSessionNotFound                = "Session not found or expired"
	ErrDevDBFailedToFindDocument         = "Database failed to find document"
	ErrDevDBFailedToInsertDocument       = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument       = "Database failed to update document"
	ErrDevDBFailedToIterateDocuments     = "Database failed to iterate documents"
	ErrDevDBStringNotObjectID            = "String is not a valid ObjectID"
	ErrDevRedisGetData                   = "Redis failed to get data"
	ErrDevRedisSetData                   = "Redis failed to set data"
	ErrDevRedisDeleteData                = "Redis failed to delete data"
	ErrDevRedisStoreSession              = "Redis failed to store session"
)
