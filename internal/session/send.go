package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"peerchat/config"
	ncerr "peerchat/internal/errors"
	"peerchat/internal/metrics"
	"peerchat/util"
)

// Sender copies local input to the stream one line at a time.
type Sender struct {
	in      *bufio.Reader
	dst     io.Writer
	addr    string
	metrics *metrics.Collector
}

// NewSender builds a Sender reading from in and writing to dst.  A
// *bufio.Reader of exactly config.MaxDelivery bytes is used as is so
// input already buffered by a caller (an address prompt) is not lost.
func NewSender(in io.Reader, dst io.Writer, addr string, m *metrics.Collector) *Sender {
	br, ok := in.(*bufio.Reader)
	if !ok || br.Size() != config.MaxDelivery {
		// Hide the concrete type so NewReaderSize never reuses a
		// reader of a different size.
		br = bufio.NewReaderSize(struct{ io.Reader }{in}, config.MaxDelivery)
	}
	return &Sender{in: br, dst: dst, addr: addr, metrics: m}
}

// Run writes each input line, terminator included, with one blocking
// Write.  A line longer than config.MaxDelivery goes out in
// MaxDelivery-sized pieces followed by the remainder.  Run returns nil
// at end of input and a send NetworkError when a write fails.
func (s *Sender) Run() error {
	for {
		chunk, err := s.in.ReadSlice('\n')
		if len(chunk) > 0 {
			n, werr := s.dst.Write(chunk)
			s.metrics.Wrote(n)
			if werr != nil {
				werr = ncerr.Wrap(ncerr.OpSend, s.addr, werr)
				s.metrics.RecordError(werr.Error())
				return werr
			}
		}

		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
			continue
		case util.IsEOF(err):
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
