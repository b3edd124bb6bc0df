package serror

import "fmt"

// StrideError is the error type returned by stride packages for conditions
// the caller may want to surface verbatim.
type StrideError struct {
	Err string
}

// New creates a StrideError from the given format and arguments.
func New(format string, args ...interface{}) *StrideError {
	return &StrideError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrideError) Error() string {
	return e.Err
}
