package core

import (
	"context"
	"fmt"

	"peerchat/config"
	"peerchat/internal/session"
	"peerchat/internal/transport"
	"peerchat/util"
)

// ConnectMode dials the peer's rendezvous point and runs the chat
// session on the resulting connection.
type ConnectMode struct {
	stdio
	Dialer  transport.Dialer
	Address string // host:port
	Logger  *util.Logger
}

// Run dials the peer, creates a session, and runs it.  The dialer is
// closed when Run returns.
func (m *ConnectMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	m.Logger.Verbose("connecting to %s", m.Address)

	conn, err := m.Dialer.Dial(ctx, "tcp4", m.Address)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}

	fmt.Fprintln(m.stdout(), "Connected to peer as client.")

	sess := session.New(conn, config.RoleDialer, m.stdin(), m.stdout(), m.Logger)
	return sess.Run(ctx)
}
