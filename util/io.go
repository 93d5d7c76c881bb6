package util

import (
	"errors"
	"io"
	"net"
)

// IsClosedConn reports whether err only says that the local side has
// already closed the connection.  Such errors are expected while a
// session is being torn down and are not worth reporting.
func IsClosedConn(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	// net.OpError wrapping "use of closed network connection"
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// IsEOF reports whether err marks an orderly end of stream.
func IsEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
