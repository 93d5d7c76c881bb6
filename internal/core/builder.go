package core

import (
	"fmt"
	"io"

	"peerchat/config"
	ncerr "peerchat/internal/errors"
	"peerchat/internal/transport"
	"peerchat/util"
)

// Build constructs the Mode for cfg.Role.  This is the only branching
// point between the two roles.  For a dialer, cfg.PeerAddr must already
// hold the typed address; the address policy is applied here.
func Build(cfg *config.Config, logger *util.Logger, stdin io.Reader, stdout io.Writer) (Mode, error) {
	std := stdio{Stdin: stdin, Stdout: stdout}

	switch cfg.Role {
	case config.RoleListener:
		return &ListenMode{
			stdio:   std,
			Port:    cfg.Port,
			Backlog: config.ListenBacklog,
			Logger:  logger,
		}, nil

	case config.RoleDialer:
		host, fallback, err := config.ResolvePeerAddr(cfg.PeerAddr, cfg.AddrPolicy)
		if err != nil {
			return nil, err
		}
		if fallback {
			logger.Error("%q is not a dotted-decimal IPv4 address; dialing %s instead",
				cfg.PeerAddr, host)
		}
		return &ConnectMode{
			stdio:   std,
			Dialer:  &transport.TCPDialer{Timeout: cfg.DialTimeout},
			Address: util.FormatAddr(host, cfg.Port),
			Logger:  logger,
		}, nil

	default:
		return nil, ncerr.Usage("role", fmt.Sprint(cfg.Role), ncerr.ErrUnknownRole, "")
	}
}
