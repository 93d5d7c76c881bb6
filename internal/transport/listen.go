package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	ncerr "peerchat/internal/errors"
	"peerchat/util"
)

// OnceListener accepts exactly one connection on all local IPv4
// interfaces and then stops listening.  Attempts made after that are
// refused by the kernel.  Attempts that raced the first peer into the
// accept queue are reset when the listener closes.
type OnceListener struct {
	Port    int // 0 picks an ephemeral port
	Backlog int // pending-connection queue; values below 1 mean 1
	Logger  *util.Logger

	// Ready, if set, is called with the bound address once the socket
	// is listening.
	Ready func(addr net.Addr)
}

var _ Acceptor = (*OnceListener)(nil)

// ListenAndAccept binds, listens, and blocks for one peer.  When ctx
// ends before a peer arrives it returns (nil, nil).
func (l *OnceListener) ListenAndAccept(ctx context.Context) (net.Conn, error) {
	backlog := l.Backlog
	if backlog < 1 {
		backlog = 1
	}

	ln, err := listenTCP4(ctx, l.Port, backlog)
	if err != nil {
		return nil, err
	}

	var closeOnce sync.Once
	closeLn := func() { closeOnce.Do(func() { ln.Close() }) }
	defer closeLn()

	l.Logger.Verbose("listening on %s (backlog %d)", ln.Addr(), backlog)
	if l.Ready != nil {
		l.Ready(ln.Addr())
	}

	// Shut the listener down when the context expires.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			closeLn()
		case <-stop:
		}
	}()

	conn, err := ln.Accept()
	if err != nil {
		select {
		case <-ctx.Done():
			return nil, nil
		default:
			return nil, ncerr.Wrap(ncerr.OpAccept, ln.Addr().String(), err)
		}
	}

	// One peer only: stop listening before handing the stream out.
	closeLn()
	l.Logger.Verbose("connection from %s", conn.RemoteAddr())
	return conn, nil
}

func sockAddrString(port int) string {
	return fmt.Sprintf("0.0.0.0:%d", port)
}
