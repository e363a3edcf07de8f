package document

import "fmt"

var (
	// ErrUnsupportedFormat is returned when no registered reader handles the
	// extension of the requested file.
	ErrUnsupportedFormat = fmt.Errorf("unsupported document format")
)
