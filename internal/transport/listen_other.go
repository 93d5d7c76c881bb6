//go:build !unix

package transport

import (
	"context"
	"net"

	ncerr "peerchat/internal/errors"
)

// listenTCP4 falls back to the standard listener, which combines bind
// and listen and uses the system backlog.  Failures are reported as
// bind errors.
func listenTCP4(ctx context.Context, port, _ int) (net.Listener, error) {
	addr := sockAddrString(port)

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp4", addr)
	if err != nil {
		return nil, ncerr.Wrap(ncerr.OpBind, addr, err)
	}
	return ln, nil
}
