// Package config defines the runtime configuration for peerchat and
// the parsers for its role argument and peer address.
package config

import (
	"fmt"
	"strings"
	"time"

	ncerr "peerchat/internal/errors"
	"peerchat/util"
)

// Role selects which side of the rendezvous this process plays.
type Role string

const (
	RoleListener Role = "server"
	RoleDialer   Role = "client"
)

// String returns the role's session-level name.
func (r Role) String() string {
	switch r {
	case RoleListener:
		return "listener"
	case RoleDialer:
		return "dialer"
	default:
		return "unknown"
	}
}

// AddrPolicy decides what happens to a peer address that is not a
// dotted-decimal IPv4 address.
type AddrPolicy string

const (
	// AddrStrict rejects the address with a usage error.
	AddrStrict AddrPolicy = "strict"
	// AddrLenient replaces it with 0.0.0.0 and dials anyway.
	AddrLenient AddrPolicy = "lenient"
)

// Config holds every tuneable for a single peerchat run.
type Config struct {
	// ── Role ─────────────────────────────────────────────────────────
	Role Role

	// ── Connection ───────────────────────────────────────────────────
	Port        int           // listen port and dial port
	PeerAddr    string        // dialer only; prompted when empty
	AddrPolicy  AddrPolicy    // dialer only
	DialTimeout time.Duration // 0 = transport default

	// ── Output ───────────────────────────────────────────────────────
	Verbose    int
	Timestamps bool
	DryRun     bool
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:       DefaultPort,
		AddrPolicy: DefaultAddrPolicy,
	}
}

// ── Role parser ──────────────────────────────────────────────────────

// ParseRole maps the positional arguments to a Role.  Exactly one
// argument, "server" or "client", is accepted.
func ParseRole(args []string) (Role, error) {
	if len(args) != 1 {
		return "", &ncerr.UsageError{
			Arg:     "role",
			Message: fmt.Sprintf("got %d arguments, %v", len(args), ncerr.ErrNoRole),
			Hint:    "peerchat server | peerchat client",
			Err:     ncerr.ErrNoRole,
		}
	}
	switch r := Role(args[0]); r {
	case RoleListener, RoleDialer:
		return r, nil
	default:
		return "", ncerr.Usage("role", args[0], ncerr.ErrUnknownRole,
			"use server to listen or client to connect")
	}
}

// ── Address policy ───────────────────────────────────────────────────

// ParseAddrPolicy accepts "strict" or "lenient" (case-insensitive).
func ParseAddrPolicy(s string) (AddrPolicy, error) {
	switch p := AddrPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case AddrStrict, AddrLenient:
		return p, nil
	default:
		return "", &ncerr.UsageError{
			Arg:     "addr-policy",
			Value:   s,
			Message: "unknown address policy",
			Hint:    "use strict or lenient",
		}
	}
}

// ResolvePeerAddr applies the policy to a typed peer address.  The
// second return value is true when the lenient fallback replaced the
// input.
func ResolvePeerAddr(raw string, policy AddrPolicy) (string, bool, error) {
	addr := strings.TrimSpace(raw)
	if util.IsDottedIPv4(addr) {
		return addr, false, nil
	}
	if policy == AddrLenient {
		return LenientFallbackAddr, true, nil
	}
	if addr == "" {
		return "", false, ncerr.Usage("address", nil, ncerr.ErrNoAddress,
			"enter an address such as 192.168.1.10")
	}
	return "", false, ncerr.Usage("address", addr, ncerr.ErrBadAddress,
		"enter an address such as 192.168.1.10, or use --addr-policy=lenient")
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Role {
	case RoleListener, RoleDialer:
	case "":
		return ncerr.Usage("role", nil, ncerr.ErrNoRole, "peerchat server | peerchat client")
	default:
		return ncerr.Usage("role", string(c.Role), ncerr.ErrUnknownRole, "")
	}

	if c.Port < 0 || c.Port > 65535 {
		return &ncerr.UsageError{
			Arg:     "port",
			Value:   c.Port,
			Message: "out of range 0-65535",
		}
	}

	if _, err := ParseAddrPolicy(string(c.AddrPolicy)); err != nil {
		return err
	}

	if c.DialTimeout < 0 {
		return &ncerr.UsageError{
			Arg:     "timeout",
			Value:   c.DialTimeout,
			Message: "must not be negative",
		}
	}

	if c.Role == RoleDialer && c.PeerAddr != "" {
		if _, _, err := ResolvePeerAddr(c.PeerAddr, c.AddrPolicy); err != nil {
			return err
		}
	}
	return nil
}
