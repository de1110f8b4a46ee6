package flashdev

import (
	"errors"
	"fmt"
)

// ReadInfoError indicates that the fixed device record header could not be
// read: no single ELF segment fully contains the requested byte range.
type ReadInfoError struct {
	// Address is the requested record base address
	Address uint32

	// Size is the requested window size in bytes
	Size uint32
}

func (e *ReadInfoError) Error() string {
	return fmt.Sprintf("failed to read flash device info: read address: 0x%08x, size: %d bytes",
		e.Address, e.Size)
}

// IsReadInfoError returns true if the error is, or wraps, a ReadInfoError.
func IsReadInfoError(err error) bool {
	var readErr *ReadInfoError
	return errors.As(err, &readErr)
}
