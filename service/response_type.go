package service

// ResponseType enumerates the types of service responses
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Declined response, the payment provider refused the request
	Declined

	// Unavailable response, the payment provider could not be reached
	Unavailable
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"declined",
	"unavailable",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
