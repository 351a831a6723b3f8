package dynarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange is matched by every error returned from a bounds-checked accessor.
var ErrOutOfRange = errors.New("dynarray: index out of range")

// OutOfRangeError is returned by At and AtRef when the index is outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dynarray: index %d out of range [0,%d)", e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(index, size int) error {
	return errors.WithStack(&OutOfRangeError{Index: index, Size: size})
}
