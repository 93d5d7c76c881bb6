// Package cmd wires up the CLI flags and dispatches to the chat core.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"peerchat/config"
	"peerchat/internal/core"
	"peerchat/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X peerchat/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs peerchat in the requested role.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdin, os.Stdout)
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg := config.New()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("peerchat", flag.ContinueOnError)

	// ── connection ───────────────────────────────────────────────
	timeoutSec := int(cfg.DialTimeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Dial timeout in seconds (client)")

	policy := string(cfg.AddrPolicy)
	fs.StringVar(&policy, "addr-policy", policy, "Peer address policy: strict or lenient")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate arguments and exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "peerchat %s\n", version)
		return nil
	}

	cfg.DialTimeout = time.Duration(timeoutSec) * time.Second
	p, err := config.ParseAddrPolicy(policy)
	if err != nil {
		return err
	}
	cfg.AddrPolicy = p

	// ── positional arguments ─────────────────────────────────────
	role, err := config.ParseRole(fs.Args())
	if err != nil {
		return err
	}
	cfg.Role = role

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	if cfg.Timestamps {
		logger.SetTimestamps(true)
	}

	if cfg.DryRun {
		printPlan(stdout, cfg)
		return nil
	}

	// One buffered reader serves both the address prompt and the send
	// loop so nothing typed ahead is lost between them.
	in := bufio.NewReaderSize(stdin, config.MaxDelivery)

	if cfg.Role == config.RoleDialer && cfg.PeerAddr == "" {
		addr, err := promptPeerAddr(ctx, in, stdout, isTerminal(stdin))
		if err != nil {
			if ctx.Err() != nil {
				logger.Verbose("interrupted at the address prompt")
				return nil
			}
			return err
		}
		cfg.PeerAddr = addr
	}

	logger.Debug("config: role=%s port=%d peer=%q policy=%s timeout=%s",
		cfg.Role, cfg.Port, cfg.PeerAddr, cfg.AddrPolicy, cfg.DialTimeout)

	mode, err := core.Build(cfg, logger, in, stdout)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

func printPlan(w io.Writer, cfg *config.Config) {
	switch cfg.Role {
	case config.RoleListener:
		fmt.Fprintf(w, "would listen on %s (backlog %d) and accept one peer\n",
			util.FormatAddr("0.0.0.0", cfg.Port), config.ListenBacklog)
	case config.RoleDialer:
		peer := cfg.PeerAddr
		if peer == "" {
			peer = "<prompted>"
		}
		fmt.Fprintf(w, "would connect to %s (policy %s)\n",
			util.FormatAddr(peer, cfg.Port), cfg.AddrPolicy)
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `peerchat – two-party TCP chat v%s

Usage:
  peerchat [options] server      Wait for one peer on port %d
  peerchat [options] client      Connect to a peer's address

Options:
`, version, config.DefaultPort)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  PEERCHAT_PEER          peer address for client (skips the prompt)
  PEERCHAT_ADDR_POLICY   strict or lenient
  PEERCHAT_TIMEOUT       dial timeout in seconds
  PEERCHAT_VERBOSE       verbosity level
  PEERCHAT_TIMESTAMPS    prefix log lines with timestamps

Examples:
  peerchat server
  PEERCHAT_PEER=192.168.1.10 peerchat client
  peerchat -vv --addr-policy=lenient client
`)
}
