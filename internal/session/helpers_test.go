package session

import (
	"bytes"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prep/socketpair"
	"github.com/stretchr/testify/require"

	"peerchat/util"
)

// syncBuffer is a bytes.Buffer safe for one writer and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitFor polls out until it contains want.
func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), want)
	}, 3*time.Second, 10*time.Millisecond, "output never contained %q; got %q", want, out.String())
}

// streamPair returns two connected in-process stream sockets.
func streamPair(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	a, b, err := socketpair.New("unix")
	require.NoError(t, err)
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

// tcpPair returns the two ends of a loopback TCP connection.
func tcpPair(t *testing.T) (client, server net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err != nil {
			accepted <- nil
			return
		}
		accepted <- c
	}()

	client, err = net.Dial("tcp4", ln.Addr().String())
	require.NoError(t, err)
	server = <-accepted
	require.NotNil(t, server)

	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client, server
}

// quietLogger returns a logger that only prints errors, into buf.
func quietLogger(buf *syncBuffer) *util.Logger {
	l := util.NewLogger(0)
	l.SetOutput(buf)
	return l
}
