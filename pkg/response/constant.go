package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Internal server error"
	InternalServerErrorCode = 500
)

// Wire formats for Date and DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
