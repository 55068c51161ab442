package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Stream contract errors
const (
	// ErrCodeEndlessStream indicates an operation that needs a finite
	// stream was applied to a stream declared endless.
	ErrCodeEndlessStream ErrorCode = "ENDLESS_STREAM"
	// ErrCodeNotClonable indicates a stage chain that cannot be copied.
	ErrCodeNotClonable ErrorCode = "NOT_CLONABLE"
	// ErrCodeInvalidArgument indicates a stage was configured with a
	// value it cannot work with.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration could not be loaded.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates configuration failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var contractCodes = map[ErrorCode]bool{
	ErrCodeEndlessStream:   true,
	ErrCodeNotClonable:     true,
	ErrCodeInvalidArgument: true,
}

// IsContractCode reports whether code signals a misuse of the stream API
// rather than an environmental failure.
func IsContractCode(code ErrorCode) bool {
	return contractCodes[code]
}
