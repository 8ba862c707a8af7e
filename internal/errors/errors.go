package errors

import "fmt"

var (
	ErrStoreUnavailable   = fmt.Errorf("store unavailable")
	ErrMalformedBody      = fmt.Errorf("malformed request body")
	ErrInvalidMessage     = fmt.Errorf("invalid message data")
	ErrUnknownStoreDriver = fmt.Errorf("unknown store driver")
)
