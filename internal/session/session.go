// Package session turns one established stream into a running chat.
//
// A Session owns its net.Conn.  Run starts one Receiver goroutine that
// reads the stream and one Sender that writes local input to it.  The
// two touch opposite directions of the same socket, so there is no
// lock around the connection.  Neither side can stop the other: the
// Receiver ending (peer gone) leaves the Sender running, and only the
// Sender ending or the caller's context closes the stream.
package session

import (
	"context"
	"io"
	"net"
	"sync"

	"peerchat/config"
	"peerchat/internal/metrics"
	"peerchat/util"
)

// Session is the single live connection of a peerchat process.
type Session struct {
	Conn     net.Conn
	Role     config.Role
	PeerAddr string
	Stdin    io.Reader
	Stdout   io.Writer
	Logger   *util.Logger
	Metrics  *metrics.Collector

	closeOnce sync.Once
	closeErr  error
	recv      *Receiver
}

// New creates a Session bound to the given connection and I/O pair.
// The peer address is taken from the connection.
func New(conn net.Conn, role config.Role, stdin io.Reader, stdout io.Writer, logger *util.Logger) *Session {
	s := &Session{
		Conn:    conn,
		Role:    role,
		Stdin:   stdin,
		Stdout:  stdout,
		Logger:  logger,
		Metrics: metrics.New(),
	}
	if ra := conn.RemoteAddr(); ra != nil {
		s.PeerAddr = ra.String()
	}
	s.recv = NewReceiver(conn, stdout, s.PeerAddr, logger, s.Metrics)
	return s
}

// Run starts the Receiver, then runs the Sender until local input ends
// or a write fails.  Cancelling ctx closes the stream without waiting
// for the Sender, which may be blocked on input.  Run always closes
// the stream and waits for the Receiver before returning; the error is
// the Sender's.
func (s *Session) Run(ctx context.Context) error {
	s.Logger.Info("connected to peer %s as %s", s.PeerAddr, s.Role)

	go s.recv.Run()

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- NewSender(s.Stdin, s.Conn, s.PeerAddr, s.Metrics).Run()
	}()

	var err error
	select {
	case err = <-sendErr:
		if err == nil {
			s.Logger.Verbose("local input ended")
		}
	case <-ctx.Done():
		s.Logger.Verbose("shutting down session")
	}

	s.Close() //nolint:errcheck
	<-s.recv.Done()

	s.Logger.Verbose("session with %s closed: %s", s.PeerAddr, s.Metrics.Summary())
	s.Logger.Debug("metrics: %s", s.Metrics.JSON())
	return err
}

// Receiver exposes the session's receive task.
func (s *Session) Receiver() *Receiver { return s.recv }

// Close closes the stream.  Only the first call does anything; later
// calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.Conn.Close()
	})
	return s.closeErr
}
