package buffers

import "errors"

// Sentinel errors wrapped into the panic values raised on contract
// violations. Recover-and-errors.Is is the supported way to classify them.
var (
	// ErrIndexOutOfRange reports an index outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("buffers: index out of range")

	// ErrTypeMismatch reports type-erased access with an element type that
	// does not match the storage, or a MustCast that failed.
	ErrTypeMismatch = errors.New("buffers: element type mismatch")

	// ErrNegativeCapacity reports a negative minimum-capacity request.
	ErrNegativeCapacity = errors.New("buffers: negative capacity")
)
