package transport

import (
	"context"
	"net"
	"time"

	ncerr "peerchat/internal/errors"
)

// TCPDialer establishes plain TCP connections.
type TCPDialer struct {
	Timeout time.Duration // 0 = operating system default
}

// Dial connects to address over TCP.  Failures come back as a
// NetworkError with op "connect".
func (d *TCPDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: d.Timeout}

	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, ncerr.Wrap(ncerr.OpConnect, address, err)
	}
	return conn, nil
}

// Close is a no-op for stateless TCP dialers.
func (d *TCPDialer) Close() error { return nil }
