package core

import (
	"context"
	"fmt"
	"net"

	"peerchat/config"
	"peerchat/internal/session"
	"peerchat/internal/transport"
	"peerchat/util"
)

// ListenMode offers the rendezvous point: it accepts exactly one peer
// and runs the chat session on that connection.
type ListenMode struct {
	stdio
	Port    int
	Backlog int
	Logger  *util.Logger

	// Ready, if set, is called with the bound address once the socket
	// is listening.
	Ready func(addr net.Addr)
}

// Run listens, accepts one peer, and runs the session.  It returns nil
// if ctx ends before a peer connects.
func (m *ListenMode) Run(ctx context.Context) error {
	var acc transport.Acceptor = &transport.OnceListener{
		Port:    m.Port,
		Backlog: m.Backlog,
		Logger:  m.Logger,
		Ready: func(addr net.Addr) {
			fmt.Fprintf(m.stdout(), "Server listening on port %d\n", util.PortOf(addr))
			if m.Ready != nil {
				m.Ready(addr)
			}
		},
	}

	conn, err := acc.ListenAndAccept(ctx)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if conn == nil {
		m.Logger.Verbose("stopped before a peer connected")
		return nil
	}

	fmt.Fprintln(m.stdout(), "Connected to peer as server.")

	sess := session.New(conn, config.RoleListener, m.stdin(), m.stdout(), m.Logger)
	err = sess.Run(ctx)
	m.Logger.Debug("receiver finished %s", sess.Receiver().State())
	return err
}
