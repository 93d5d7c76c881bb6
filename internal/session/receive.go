package session

import (
	"io"
	"sync/atomic"

	"peerchat/config"
	ncerr "peerchat/internal/errors"
	"peerchat/internal/metrics"
	"peerchat/util"
)

// DisplayPrefix marks a displayed delivery as coming from the peer.
const DisplayPrefix = "Peer: "

// PeerClosedNotice is shown once when the peer shuts its side down.
const PeerClosedNotice = "Peer disconnected"

// State is the receive task's position in its life cycle.
type State int32

const (
	// Listening means the task is blocked on, or about to issue, a read.
	Listening State = iota
	// PeerClosed means the peer performed an orderly shutdown.
	PeerClosed
	// Failed means a read returned an error.
	Failed
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case PeerClosed:
		return "peer-closed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Receiver reads deliveries from the stream and displays them.  It
// leaves Listening at most once and never retries.
type Receiver struct {
	src     io.Reader
	out     io.Writer
	addr    string
	logger  *util.Logger
	metrics *metrics.Collector

	state atomic.Int32
	err   error
	done  chan struct{}
}

// NewReceiver builds a Receiver that reads src and displays on out.
// addr is only used in error reports.
func NewReceiver(src io.Reader, out io.Writer, addr string, logger *util.Logger, m *metrics.Collector) *Receiver {
	return &Receiver{
		src:     src,
		out:     out,
		addr:    addr,
		logger:  logger,
		metrics: m,
		done:    make(chan struct{}),
	}
}

// Run reads until end of stream or error.  Each non-empty read is
// displayed as one delivery; deliveries follow read boundaries, not
// line boundaries.
func (r *Receiver) Run() {
	buf := make([]byte, config.MaxDelivery)
	for {
		n, err := r.src.Read(buf)
		if n > 0 {
			r.metrics.Delivered(n)
			if werr := r.display(buf[:n]); werr != nil {
				r.fail(werr)
				return
			}
		}

		switch {
		case err == nil:
			continue
		case util.IsEOF(err):
			r.peerClosed()
			return
		default:
			r.fail(ncerr.Wrap(ncerr.OpReceive, r.addr, err))
			return
		}
	}
}

// State returns the current state.
func (r *Receiver) State() State { return State(r.state.Load()) }

// Done is closed once the receiver reaches a terminal state.
func (r *Receiver) Done() <-chan struct{} { return r.done }

// Err returns the failure that ended the receiver, or nil.  Only
// meaningful after Done is closed.
func (r *Receiver) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

func (r *Receiver) display(chunk []byte) error {
	line := make([]byte, 0, len(DisplayPrefix)+len(chunk)+1)
	line = append(line, DisplayPrefix...)
	line = append(line, chunk...)
	if chunk[len(chunk)-1] != '\n' {
		line = append(line, '\n')
	}
	_, err := r.out.Write(line)
	return err
}

func (r *Receiver) peerClosed() {
	if !r.enter(PeerClosed, nil) {
		return
	}
	io.WriteString(r.out, PeerClosedNotice+"\n") //nolint:errcheck
	r.logger.Verbose("peer %s closed the connection", r.addr)
	close(r.done)
}

func (r *Receiver) fail(err error) {
	if !r.enter(Failed, err) {
		return
	}
	if util.IsClosedConn(err) {
		r.logger.Debug("receiver stopped: %v", err)
	} else {
		r.metrics.RecordError(err.Error())
		r.logger.Error("%v", err)
	}
	close(r.done)
}

// enter moves out of Listening.  It reports false if that already
// happened.
func (r *Receiver) enter(s State, err error) bool {
	if !r.state.CompareAndSwap(int32(Listening), int32(s)) {
		return false
	}
	r.err = err
	return true
}
