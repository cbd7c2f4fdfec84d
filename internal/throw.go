package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursive generator and the clipping loop
// would add noise to the geometry code. Instead, we panic with a
// thrownError, and the public API recovers to convert to an error.

var (
	// The caller asked for something the generator cannot produce, such as an
	// odd number of divisions.
	ErrInvalidConfig = errors.New("invalid configuration")
	// The triangulation heuristic could not find an ear to clip.
	ErrAlgorithmFailure = errors.New("algorithm failure")
)

// Wrapping the error lets recovery tell our own panics apart from runtime
// errors, which also satisfy the error interface and must keep panicking.
type thrownError struct {
	err error
}

// Panic with an error wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(thrownError{errors.Wrapf(kind, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(thrownError); ok {
			return thrown.err
		}
		panic(r)
	}
	return nil
}
