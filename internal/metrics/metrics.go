// Package metrics provides lightweight, lock-free counters for a
// peerchat session: bytes and chunks in each direction plus errors.
//
// All methods are safe for concurrent use; the receive goroutine and
// the send loop update the same Collector without coordinating.  A nil
// *Collector is a valid no-op receiver, so callers never need to
// nil-check.
package metrics

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jpillora/sizestr"
)

// Collector tracks runtime metrics for one session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	bytesIn     atomic.Int64
	bytesOut    atomic.Int64
	deliveries  atomic.Int64
	writes      atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── I/O metrics ──────────────────────────────────────────────────────

// Delivered records one inbound delivery of n bytes.
func (c *Collector) Delivered(n int) {
	if c == nil {
		return
	}
	c.deliveries.Add(1)
	c.bytesIn.Add(int64(n))
}

// Wrote records one outbound write of n bytes.
func (c *Collector) Wrote(n int) {
	if c == nil {
		return
	}
	c.writes.Add(1)
	c.bytesOut.Add(int64(n))
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// Deliveries returns the number of non-empty reads.
func (c *Collector) Deliveries() int64 {
	if c == nil {
		return 0
	}
	return c.deliveries.Load()
}

// Writes returns the number of write calls made.
func (c *Collector) Writes() int64 {
	if c == nil {
		return 0
	}
	return c.writes.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	BytesIn          int64  `json:"bytes_in"`
	BytesOut         int64  `json:"bytes_out"`
	Deliveries       int64  `json:"deliveries"`
	Writes           int64  `json:"writes"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Second).String(),
		BytesIn:     c.bytesIn.Load(),
		BytesOut:    c.bytesOut.Load(),
		Deliveries:  c.deliveries.Load(),
		Writes:      c.writes.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// Summary renders the byte counters for a one-line teardown log.
func (c *Collector) Summary() string {
	s := c.Snapshot()
	return fmt.Sprintf("sent %s in %d writes, received %s in %d deliveries",
		sizestr.ToString(s.BytesOut), s.Writes,
		sizestr.ToString(s.BytesIn), s.Deliveries)
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
