package response

const (
	// MessageSuccess is the message attached to every successful response.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "something went wrong"

	// InternalServerErrorCode is the generic error code used for 500 responses.
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the wire formats for Date/DateTime.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
