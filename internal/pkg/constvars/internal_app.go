package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "requestID"
	CONTEXT_SESSION_DATA_KEY ContextKey = "sessionData"
)

const (
	SessionGuestUser      = "Guest"
	SessionRedisKeyPrefix = "session:"
)

const (
	DenialStatusDenied   = "Denied"
	DenialStatusAppealed = "Appealed"
	DenialStatusPaid     = "Paid"
	DenialStatusWriteOff = "Write Off"
	DenialStatusOther    = "Other"
)

const (
	MongoCollectionPatients = "patients"
	MongoCollectionDenials  = "denials"
	MongoCollectionNotes    = "notes"
	MongoCollectionUsers    = "users"
)

const ResponseUnknown = "unknown"
