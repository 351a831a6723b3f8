package dynarray

import "github.com/pkg/errors"

// violated reports a broken caller contract. Callers guard it with the
// checked constant so that unchecked builds compile the test away.
func violated(format string, args ...any) {
	panic(errors.Errorf("dynarray: "+format, args...))
}
