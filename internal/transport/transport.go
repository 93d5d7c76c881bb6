// Package transport provides the two ways a peerchat stream comes into
// existence: accepting exactly one peer on a listening socket, or
// dialing a peer.  Both hand back a plain net.Conn whose read and write
// directions are independent, which is all the session layer relies on.
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound network connections.
type Dialer interface {
	// Dial establishes a connection to the given network address.
	Dial(ctx context.Context, network, address string) (net.Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}

// Acceptor produces a single inbound connection.
type Acceptor interface {
	// ListenAndAccept binds, listens, and blocks until one peer
	// connects.  It returns (nil, nil) if ctx ends first.
	ListenAndAccept(ctx context.Context) (net.Conn, error)
}
