package lineterm

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors identifying the three failure classes the session can
// surface. Use errors.Is against these; ErrParse additionally carries the
// parser state it failed in via *ParseError.
var (
	// ErrInvalidArgument is returned for malformed configuration: by New
	// for a nil transport, an empty prompt, or a non-positive line length
	// limit, and by NewHistory for a capacity that is not a power of two
	// >= 2. WithHistory does not pass that error on: New then builds a
	// session without history.
	ErrInvalidArgument = errors.New("lineterm: invalid argument")

	// ErrParse is returned when an escape sequence from the terminal could
	// not be decoded. The caller may retry ReadLine.
	ErrParse = errors.New("lineterm: escape sequence parse failure")

	// ErrTransport is the sentinel a failed write is wrapped in when the
	// session was built WithDebugPartialWrites. The wrapped error is not
	// returned from any Session method, so write failures are tolerated
	// silently either way.
	ErrTransport = errors.New("lineterm: transport write failure")
)

// ParseError reports an escape-sequence decode failure together with the
// parser state it occurred in.
type ParseError struct {
	State parseState
	Byte  byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lineterm: unexpected byte %#02x in state %s", e.Byte, e.State)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func wrapTransportErr(format string, args ...interface{}) error {
	return pkgerrors.Wrapf(ErrTransport, format, args...)
}
