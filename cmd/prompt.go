package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const peerPrompt = "Enter server IP address: "

type promptResult struct {
	line string
	err  error
}

// promptPeerAddr reads one line from in.  The prompt text is only
// written when a person is typing.  If ctx ends first it returns
// ctx.Err(); the pending read is abandoned and in must not be used
// again.
func promptPeerAddr(ctx context.Context, in *bufio.Reader, out io.Writer, interactive bool) (string, error) {
	if interactive {
		fmt.Fprint(out, peerPrompt)
	}

	done := make(chan promptResult, 1)
	go func() {
		line, err := in.ReadString('\n')
		done <- promptResult{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil && res.err != io.EOF {
			return "", fmt.Errorf("reading address: %w", res.err)
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
