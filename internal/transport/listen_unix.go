//go:build unix

package transport

import (
	"context"
	"net"
	"os"

	"golang.org/x/sys/unix"

	ncerr "peerchat/internal/errors"
)

// listenTCP4 builds the listening socket by hand so the backlog passed
// to listen(2) is exactly the one requested; net.Listen always uses the
// system maximum.  The descriptor is closed on every error path.
func listenTCP4(_ context.Context, port, backlog int) (net.Listener, error) {
	addr := sockAddrString(port)

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, ncerr.Wrap(ncerr.OpSocket, addr, os.NewSyscallError("socket", err))
	}
	unix.CloseOnExec(fd)

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, ncerr.Wrap(ncerr.OpSocket, addr, os.NewSyscallError("setsockopt", err))
	}

	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: port}); err != nil {
		unix.Close(fd)
		return nil, ncerr.Wrap(ncerr.OpBind, addr, os.NewSyscallError("bind", err))
	}

	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, ncerr.Wrap(ncerr.OpListen, addr, os.NewSyscallError("listen", err))
	}

	// net.FileListener dups the descriptor; the *os.File is ours to close.
	f := os.NewFile(uintptr(fd), "peerchat-listener")
	ln, err := net.FileListener(f)
	f.Close()
	if err != nil {
		return nil, ncerr.Wrap(ncerr.OpListen, addr, err)
	}
	return ln, nil
}
