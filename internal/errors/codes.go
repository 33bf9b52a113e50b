package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeCanceled           Code = "CANCELED"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Codes caused by user input map to 2, storage problems to 3, everything else to 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition:
		return 2
	case CodeResourceExhausted, CodeUnavailable, CodeDataLoss:
		return 3
	default:
		return 1
	}
}

// UserFacing reports whether errors with this code carry a message meant for the user
// rather than for the diagnostic log.
func (c Code) UserFacing() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
