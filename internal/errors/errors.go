// Package errors provides domain-specific error types for peerchat.
//
// Every failure the program can report falls into one of two shapes: a
// UsageError (bad command line or rejected input, no network action
// taken) or a NetworkError tagged with the socket operation that
// failed.  Nothing in peerchat retries; the types exist so callers and
// tests can tell the failures apart.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrNoRole      = errors.New("exactly one argument required: server or client")
	ErrUnknownRole = errors.New("unknown role")
	ErrBadAddress  = errors.New("not a dotted-decimal IPv4 address")
	ErrNoAddress   = errors.New("no peer address entered")
)

// ── Network operations ───────────────────────────────────────────────

// Op names the socket operation a NetworkError came from.
type Op string

const (
	OpSocket  Op = "socket"
	OpBind    Op = "bind"
	OpListen  Op = "listen"
	OpAccept  Op = "accept"
	OpConnect Op = "connect"
	OpReceive Op = "receive"
	OpSend    Op = "send"
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op   Op     // which step failed
	Addr string // network address involved
	Err  error  // underlying system cause
}

func (e *NetworkError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Addr, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UsageError represents an invalid argument or input value.  The
// program exits before touching the network when it sees one.
type UsageError struct {
	Arg     string      // argument or input name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel cause (optional)
}

func (e *UsageError) Error() string {
	msg := "usage"
	if e.Arg != "" {
		msg += ": " + e.Arg
	}
	if e.Value != nil {
		msg += fmt.Sprintf("=%q", fmt.Sprint(e.Value))
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError for op on addr.  A nil err stays nil.
func Wrap(op Op, addr string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Op: op, Addr: addr, Err: err}
}

// Usage creates a UsageError around a sentinel cause.
func Usage(arg string, value interface{}, cause error, hint string) *UsageError {
	return &UsageError{
		Arg:     arg,
		Value:   value,
		Message: cause.Error(),
		Hint:    hint,
		Err:     cause,
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsOp reports whether err is a NetworkError raised by op.
func IsOp(err error, op Op) bool {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Op == op
	}
	return false
}

// IsUsage reports whether err is a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
