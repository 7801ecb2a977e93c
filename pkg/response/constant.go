package response

const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "internal server error"
	InternalServerErrorCode = 500
)

// Serialization formats for API payloads. Event times serialize as ISO-8601
// local date-times with minute-or-finer precision.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)
