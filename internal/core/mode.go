// Package core is the orchestration layer.  It turns a Config into one
// of two bootstrap paths, listen-and-accept or dial, and hands the
// resulting stream to a session.Session.  Past that point the two
// paths are identical.
//
// Architecture layers (bottom → top):
//
//	transport  →  session  →  core  →  cmd (CLI)
package core

import (
	"context"
	"io"
	"os"
)

// Mode is one way of obtaining the chat stream.  Each mode owns its
// full lifecycle from connection establishment to teardown.
type Mode interface {
	Run(ctx context.Context) error
}

// stdio holds the local I/O pair shared by both modes.  Stdin/Stdout
// default to os.Stdin/os.Stdout when nil; tests override them.
type stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
}

func (s stdio) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s stdio) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}
