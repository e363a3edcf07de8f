package core

import "fmt"

var (
	// ErrInvalidArgument is returned when a required parameter is nil, e.g.
	// a nil session passed to SessionStore.Save.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrTypeMismatch is returned by GetState when a value exists under the
	// requested key but its dynamic type does not match the requested type
	// parameter. It is distinct from the key being absent, which is not an
	// error.
	ErrTypeMismatch = fmt.Errorf("stored value type mismatch")
)
