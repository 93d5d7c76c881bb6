// peerchat - a two-party chat over a single TCP connection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"peerchat/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "peerchat: %v\n", err)
		os.Exit(1)
	}
}
